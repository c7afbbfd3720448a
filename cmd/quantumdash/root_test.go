package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/quantumdash/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("QUANTUMDASH_CONFIG", "")
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "quantumdash dev\n", out)
}

func TestSnapshotChess(t *testing.T) {
	isolate(t)
	out, err := execute(t, "snapshot", "--seed", "7", "--width", "160", "--height", "48")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "CHESS.AI QUANTUM MATRIX")
	require.Contains(t, plain, "GAME #010")
	require.Contains(t, plain, "QUANTUM ACCURACY")
}

func TestSnapshotModeFlag(t *testing.T) {
	isolate(t)
	out, err := execute(t, "snapshot", "--mode", "arc")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "ARC-AGI PATTERN SOLVER")
	require.NotContains(t, plain, "GAME #")
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	isolate(t)
	_, err := execute(t, "snapshot", "--mode", "checkers")
	require.Error(t, err)

	_, err = execute(t, "snapshot", "--width", "0")
	require.Error(t, err)

	_, err = execute(t, "snapshot", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestSnapshotReadsConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nmode = \"arc\"\n"), 0o644))

	out, err := execute(t, "snapshot", "--config", path)
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "ARC-AGI #001")
}

func TestInitConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "qd", "config.toml")

	out, err := execute(t, "init-config", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "wrote "))

	cfg, _, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	_, err = execute(t, "init-config", path)
	require.Error(t, err, "existing file must not be overwritten")

	_, err = execute(t, "init-config", "--force", path)
	require.NoError(t, err)
}

func TestSnapshotModeAliasFromConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nmode = \"puzzle\"\n"), 0o644))

	out, err := execute(t, "snapshot", "--config", path)
	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "ARC-AGI #001")
	require.NotContains(t, plain, "warning:")

	t.Setenv("QUANTUMDASH_UI_MODE", "puzzles")
	out, err = execute(t, "snapshot")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "ARC-AGI #001")
}

func TestSnapshotWarnsOnInvalidMode(t *testing.T) {
	isolate(t)
	t.Setenv("QUANTUMDASH_UI_MODE", "tetris")
	out, err := execute(t, "snapshot")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, `warning: ui.mode = "tetris" is invalid, using "chess"`)
	require.Contains(t, plain, "GAME #001")

	out, err = execute(t, "snapshot", "--mode", "arc")
	require.NoError(t, err)
	require.NotContains(t, ansi.Strip(out), "warning:", "--mode replaces the bad config value")
}

func TestLogFallbacksWarnsPerValue(t *testing.T) {
	isolate(t)
	t.Setenv("QUANTUMDASH_UI_MODE", "tetris")
	t.Setenv("QUANTUMDASH_FLOATING_CAPACITY", "0")
	_, fbs, err := config.Load("")
	require.NoError(t, err)

	core, logs := observer.New(zapcore.WarnLevel)
	logFallbacks(zap.New(core), fbs)

	entries := logs.FilterMessage("invalid config value, using default").All()
	require.Len(t, entries, 2)
	fields := map[string]string{}
	for _, e := range entries {
		ctx := e.ContextMap()
		fields[ctx["key"].(string)] = ctx["value"].(string)
	}
	require.Equal(t, map[string]string{"ui.mode": "tetris", "floating.capacity": "0"}, fields)
}

func TestSnapshotTicksFlag(t *testing.T) {
	isolate(t)
	out, err := execute(t, "snapshot", "--seed", "3", "--ticks", "12", "--height", "40")
	require.NoError(t, err)
	plain := ansi.Strip(out)
	require.Contains(t, plain, "GAME #001")
	require.Len(t, strings.Split(strings.TrimSuffix(plain, "\n"), "\n"), 40)

	_, err = execute(t, "snapshot", "--ticks", "-1")
	require.Error(t, err)
}
