// Package translate formats user-facing text in the user's language.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lingo: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the best matching language for the locales.
// With no usable locale, en-US is used.
func SetLanguage(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag = message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.AmericanEnglish
	}

	printer = message.NewPrinter(tag)
}

// Language returns the currently selected language.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
