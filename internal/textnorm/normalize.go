// Package textnorm prepares complaint text for classification.
// Normalization is a pure function: lowercase, fold accents, strip
// punctuation, fix common misspellings, collapse whitespace.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// spellingCorrections maps misspellings seen in real complaint text to
// their corrected forms, plus British variants folded to the spellings the
// keyword tables use. Applied token-wise after punctuation stripping.
var spellingCorrections = map[string]string{
	"hijaced":       "hijacked",
	"hijacced":      "hijacked",
	"neighbour":     "neighbor",
	"neighbours":    "neighbors",
	"salery":        "salary",
	"sallary":       "salary",
	"harasment":     "harassment",
	"harrasment":    "harassment",
	"harrassment":   "harassment",
	"divorse":       "divorce",
	"marrige":       "marriage",
	"acident":       "accident",
	"accidnet":      "accident",
	"theif":         "thief",
	"cheeting":      "cheating",
	"fraudulant":    "fraudulent",
	"recieved":      "received",
	"moeny":         "money",
	"negligance":    "negligence",
	"compensastion": "compensation",
	"kidnaping":     "kidnapping",
	"blackmale":     "blackmail",
	"vehical":       "vehicle",
	"polce":         "police",
}

// nonAlphanumeric matches runs of characters that are neither letters,
// digits, nor whitespace.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]+`)

// whitespaceRun matches runs of whitespace.
var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes complaint text for classification and cache keys.
// The same input always yields the same output.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return ""
	}

	s = removeAccents(s)

	// Punctuation becomes a token boundary, not deletion, so that
	// "salary,boss" still splits into two tokens.
	s = nonAlphanumeric.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	for i, w := range words {
		if corrected, ok := spellingCorrections[w]; ok {
			words[i] = corrected
		}
	}

	return strings.Join(words, " ")
}

// Tokenize returns the whitespace-separated tokens of the normalized text.
// Returns nil for empty or all-punctuation input.
func Tokenize(text string) []string {
	s := Normalize(text)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

// removeAccents strips diacritical marks so transliterated Hindi terms
// ("Nyāya") match their plain-ASCII spellings.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// CollapseWhitespace reduces whitespace runs to single spaces without any
// other normalization. Used for display text that must keep its casing.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
