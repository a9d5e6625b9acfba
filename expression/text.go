package expression

import (
	"strconv"
	"strings"
)

// IndefiniteArticle prefixes a term with "a" or "an" chosen by its initial
// letter. Terms already carrying an article are returned unchanged.
func IndefiniteArticle(term string) string {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return term
	}
	lower := strings.ToLower(trimmed)
	if lower == "everything" || lower == "nothing" ||
		strings.HasPrefix(lower, "a ") || strings.HasPrefix(lower, "an ") || strings.HasPrefix(lower, "the ") {
		return trimmed
	}
	if strings.ContainsRune("aeiou", rune(lower[0])) {
		return "an " + trimmed
	}
	return "a " + trimmed
}

// JoinList joins rendered phrases into an English enumeration: a single item
// stands alone, two items are joined with the conjunction, and longer lists
// use comma separators with the conjunction before the final item
// ("A, B, and C"). conjunction is the bare word ("and" or "or").
func JoinList(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conjunction + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + conjunction + " " + items[len(items)-1]
	}
}

// LowerFirst lowercases the first letter of s, leaving the rest untouched.
// Used when exact class labels are not requested.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

// NumberWord spells out small cardinalities ("two", "twelve"); numbers above
// twenty fall back to digits.
func NumberWord(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return strconv.Itoa(n)
}
