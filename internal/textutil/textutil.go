// Package textutil holds the pure text helpers behind the utility
// endpoints: email syntax validation, word-frequency extraction and
// threshold-based labeling.
package textutil

import (
	"regexp"
	"sort"
	"strings"

	"github.com/accrypt/accrypt-go/internal/model"
)

// DefaultTopN is the number of words returned by the top-words endpoint.
const DefaultTopN = 5

// emailPattern is purely syntactic; no DNS or deliverability checks.
// The trailing \n? keeps the historical leniency of accepting exactly one
// newline after an otherwise valid address.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+\n?$`)

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// TopWords lower-cases every input, splits on whitespace and returns the
// topN most frequent tokens. Ties are broken by first encounter across
// the concatenated inputs, not alphabetically. topN <= 0 yields nil; a
// topN beyond the number of distinct tokens yields all of them.
func TopWords(emails []string, topN int) []model.WordCount {
	if topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, email := range emails {
		for _, word := range strings.Fields(strings.ToLower(email)) {
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	result := make([]model.WordCount, 0, len(order))
	for _, word := range order {
		result = append(result, model.WordCount{Word: word, Count: counts[word]})
	}

	// Stable sort over first-encounter order gives most-common semantics.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > topN {
		result = result[:topN]
	}
	return result
}

// Label maps a probability to "spam" or "not spam". The threshold is
// inclusive: prob == threshold labels as spam. Neither value is range
// checked; semantics of out-of-[0,1] inputs are the caller's business.
func Label(prob, threshold float64) string {
	if prob >= threshold {
		return "spam"
	}
	return "not spam"
}
