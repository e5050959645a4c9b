package menu

import "strings"

// Args is the optional argument text that followed the command name.
type Args struct {
	text string
	set  bool
}

// NoArgs returns an absent argument.
func NoArgs() Args {
	return Args{}
}

// ArgsOf wraps text; empty text is treated as absent.
func ArgsOf(text string) Args {
	if text == "" {
		return Args{}
	}
	return Args{text: text, set: true}
}

// Value returns the argument text and whether it was present.
func (a Args) Value() (string, bool) {
	return a.text, a.set
}

// IsSet reports whether an argument was given.
func (a Args) IsSet() bool {
	return a.set
}

// String returns the argument text, or "" when absent.
func (a Args) String() string {
	return a.text
}

// Split returns the first whitespace-delimited token and the remaining
// arguments, using the same rules as the line parser.
func (a Args) Split() (string, Args) {
	return splitFirst(a.text)
}

// Fields splits the argument text on whitespace runs.
func (a Args) Fields() []string {
	return strings.FieldsFunc(a.text, func(r rune) bool {
		return r < 0x80 && isSpace(byte(r))
	})
}
