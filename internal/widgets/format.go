package widgets

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// Thousands formats n with comma group separators.
func Thousands(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}
