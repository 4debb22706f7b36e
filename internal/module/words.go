package module

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Words replaces glossary words in descriptions, e.g. "api" -> "API".
// Matching ignores case and only replaces whole words.
type Words struct{}

func (Words) Name() string     { return "words" }
func (Words) Nickname() string { return "wr" }

// Apply runs every glossary word replacement in order
func (Words) Apply(desc string, ctx Context) string {
	for _, w := range ctx.Words() {
		if w.From == "" {
			continue
		}
		desc = wordPattern(w.From).ReplaceAllLiteralString(desc, w.To)
	}
	return desc
}

// wordPattern matches word case-insensitively. Word boundaries are only
// required on sides where word starts or ends with a word character.
func wordPattern(word string) *regexp.Regexp {
	expr := regexp.QuoteMeta(word)
	if first, _ := utf8.DecodeRuneInString(word); isWordRune(first) {
		expr = `\b` + expr
	}
	if last, _ := utf8.DecodeLastRuneInString(word); isWordRune(last) {
		expr += `\b`
	}
	return regexp.MustCompile("(?i)" + expr)
}

func isWordRune(r rune) bool {
	return r == '_' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
