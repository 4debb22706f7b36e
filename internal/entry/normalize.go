package entry

import (
	"regexp"
	"strings"
	"unicode"
)

// urlPattern matches words that look like links
var urlPattern = regexp.MustCompile(`^(?:https?://\S+|www\.\S+)`)

// categoryBlockPattern matches a trailing "(a, b, #tag, $shortcut)" block.
// Anything after the closing parenthesis, even a space, makes it ordinary text.
var categoryBlockPattern = regexp.MustCompile(`^(.*)(\(([a-zA-Z0-9\-_,;\s#$]+)\))$`)

// CategoryBlock is a description split at its trailing category block
type CategoryBlock struct {
	Rest   string // text before the block, untrimmed
	Block  string // the block including parentheses
	Inside string // the block contents
}

// SplitCategoryBlock separates a trailing category block from the rest of a description.
// Returns false if the description does not end in one.
func SplitCategoryBlock(desc string) (CategoryBlock, bool) {
	m := categoryBlockPattern.FindStringSubmatch(desc)
	if m == nil {
		return CategoryBlock{}, false
	}
	return CategoryBlock{Rest: m[1], Block: m[2], Inside: m[3]}, true
}

// NormalizeDescription title-cases every all-lowercase word that is not excluded.
// Mentions, tags, paths, $shortcuts, "w/", abbreviations, links and quoted or braced
// words are left alone, as is a trailing category block. Words ending in 's or
// containing a digit only get their first letter raised ("john's", "2nd").
// Whitespace runs collapse to single spaces; applying it twice changes nothing.
func NormalizeDescription(desc string) string {
	var tail []string
	if cb, ok := SplitCategoryBlock(strings.TrimSpace(desc)); ok && (cb.Rest == "" || strings.TrimRightFunc(cb.Rest, unicode.IsSpace) != cb.Rest) {
		desc = cb.Rest
		tail = strings.Fields(cb.Block)
	}

	words := strings.Fields(desc)
	for i, word := range words {
		if !isLower(word) || isQuotedOrBraced(word) || isExcludedWord(word) {
			continue
		}
		if strings.HasSuffix(word, "'s") || strings.ContainsFunc(word, unicode.IsDigit) {
			words[i] = capitalize(word)
			continue
		}
		words[i] = title(word)
	}

	return strings.Join(append(words, tail...), " ")
}

// isExcludedWord reports whether a lowercase word must keep its casing
func isExcludedWord(word string) bool {
	for _, prefix := range []string{"@", "#", "/", "$"} {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	return word == "w/" ||
		strings.Contains(word, ".") ||
		urlPattern.MatchString(word)
}

func isQuotedOrBraced(word string) bool {
	return strings.HasPrefix(word, `"`) || strings.HasPrefix(word, "'") || strings.HasPrefix(word, "{")
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// isLower reports whether word has at least one cased letter and all of them are lowercase
func isLower(word string) bool {
	cased := false
	for _, r := range word {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// title raises the first letter of every run of letters: "e-mail" -> "E-Mail"
func title(word string) string {
	var b strings.Builder
	prevCased := false
	for _, r := range word {
		if prevCased {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToTitle(r))
		}
		prevCased = isCased(r)
	}
	return b.String()
}

// capitalize raises the first character and lowers the rest
func capitalize(word string) string {
	var b strings.Builder
	for i, r := range word {
		if i == 0 {
			b.WriteRune(unicode.ToTitle(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
