package locator

import (
	"github.com/randalmurphal/textparser/pkg/textparser"
)

// ParserName is the name the text parser is bound under.
const ParserName = "Parser"

// ParserFactory starts a new resolver for text.
type ParserFactory func(text string) *textparser.Parser

// BindParser binds a ParserFactory under ParserName. Every Parser it
// creates gets opts.
//
// The factory itself is shared; each call to it returns a new Parser.
func BindParser(l *Locator, opts ...textparser.Option) {
	l.Singleton(ParserName, func() any {
		return ParserFactory(func(text string) *textparser.Parser {
			return textparser.Text(text, opts...)
		})
	})
}

// Parser returns the ParserFactory bound under ParserName.
func Parser(l *Locator) (ParserFactory, error) {
	return Resolve[ParserFactory](l, ParserName)
}
