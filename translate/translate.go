// Package translate formats user visible messages in the caller's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// fallback is used when the system reports no usable locale.
var fallback = language.AmericanEnglish

var printer *message.Printer

func init() {
	printer = NewPrinter(systemLocales()...)
}

func systemLocales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("turing: locale: %v", err)
	}

	return locales
}

// NewPrinter returns a printer for the best match among locales, or
// en-US when none are given.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		return message.NewPrinter(fallback)
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
