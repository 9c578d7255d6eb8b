// ABOUTME: Heuristic relevance filter suppressing obviously unrelated hits
// ABOUTME: Keyword containment plus token-coverage ratio, accent-insensitive

package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"prixmalin-api/core/domain"
)

// stopWords are short French function words ignored when extracting
// keywords. Compared after normalization, so "à" is matched as "a".
var stopWords = map[string]struct{}{
	"de": {}, "du": {}, "des": {}, "le": {}, "la": {}, "les": {},
	"un": {}, "une": {}, "au": {}, "aux": {}, "et": {}, "ou": {},
	"en": {}, "a": {},
}

// stripMarks removes combining diacritical marks after NFD decomposition.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText case-folds the text and drops diacritics, yielding a
// plain lowercase form ("crème brûlée" -> "creme brulee").
func normalizeText(text string) string {
	lowered := strings.ToLower(text)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return folded
}

// tokenize splits normalized text into maximal runs of letters.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// extractKeywords returns the significant tokens of the normalized text:
// alphabetic runs longer than one rune that are not stop words, in order.
func extractKeywords(text string) []string {
	var keywords []string
	for _, token := range tokenize(normalizeText(text)) {
		if significant(token) {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// isRelevant reports whether a product plausibly matches the query.
//
// Every query keyword must appear as a whole word in the product name
// (so "eau" never matches inside "gateau"). With two or more keywords,
// at least coverage of the name's significant tokens must relate to a
// keyword by substring in either direction; this rejects products where
// the query is only a minor descriptor ("Thon à l'huile de tournesol"
// for the query "huile tournesol").
//
// This is a coarse noise filter, not a ranking model; false positives
// and negatives are acceptable.
func isRelevant(product domain.Product, query string, coverage float64) bool {
	keywords := extractKeywords(query)
	if len(keywords) == 0 {
		return true
	}

	name := normalizeText(product.Name)
	nameTokens := tokenize(name)
	tokenSet := make(map[string]struct{}, len(nameTokens))
	for _, tok := range nameTokens {
		tokenSet[tok] = struct{}{}
	}

	for _, kw := range keywords {
		if _, ok := tokenSet[kw]; !ok {
			return false
		}
	}

	if len(keywords) >= 2 && len(nameTokens) > 0 {
		// Coverage is computed over every token of the name; stop words
		// and one-letter tokens can never count as matched, so names
		// padded with grammar words score lower. "Thon à l'huile de
		// tournesol" covers 2 of 6 and is rejected, "Huile de tournesol
		// Bellasan" covers 2 of 4 and survives.
		matched := 0
		for _, w := range nameTokens {
			if !significant(w) {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(w, kw) || strings.Contains(kw, w) {
					matched++
					break
				}
			}
		}
		if float64(matched)/float64(len(nameTokens)) < coverage {
			return false
		}
	}

	return true
}

// significant reports whether a normalized token carries meaning for
// coverage purposes.
func significant(token string) bool {
	if len([]rune(token)) <= 1 {
		return false
	}
	_, stop := stopWords[token]
	return !stop
}
