// Package classifier serves predictions from a pre-trained TF-IDF +
// logistic-regression artifact pair. The artifacts are produced offline;
// this package only loads and applies them.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// LabelSensitive and LabelSafe are the two classes of the trained
	// model: class index 1 and 0 respectively.
	LabelSensitive = "Sensitive"
	LabelSafe      = "Safe"

	vectorizerFile = "accrypt_vectorizer.json"
	modelFile      = "accrypt_model.json"
)

// tokenPattern mirrors the tokenizer the vectorizer was fitted with:
// runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_]+`)

// vectorizer maps raw text into the weighted term space learned at
// training time. Vocabulary assigns each known term a column; IDF holds
// the inverse-document-frequency weight per column.
type vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// linearModel is a binary logistic-regression decision rule over the
// vectorizer's term space.
type linearModel struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// Classifier owns the loaded artifact pair. It is immutable after Load
// and safe for concurrent use without locking.
type Classifier struct {
	vec   vectorizer
	model linearModel
}

// Load reads the vectorizer and model artifacts from dir. Any read,
// decode or shape mismatch fails the whole load; there is no partial
// state and no retry.
func Load(dir string) (*Classifier, error) {
	var c Classifier

	if err := readArtifact(filepath.Join(dir, vectorizerFile), &c.vec); err != nil {
		return nil, fmt.Errorf("loading vectorizer: %w", err)
	}
	if err := readArtifact(filepath.Join(dir, modelFile), &c.model); err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}

	if len(c.vec.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer %s has an empty vocabulary", vectorizerFile)
	}
	if len(c.vec.IDF) != len(c.vec.Vocabulary) {
		return nil, fmt.Errorf("vectorizer shape mismatch: %d idf weights for %d terms",
			len(c.vec.IDF), len(c.vec.Vocabulary))
	}
	if len(c.model.Coef) != len(c.vec.Vocabulary) {
		return nil, fmt.Errorf("model shape mismatch: %d coefficients for %d terms",
			len(c.model.Coef), len(c.vec.Vocabulary))
	}
	for term, col := range c.vec.Vocabulary {
		if col < 0 || col >= len(c.vec.IDF) {
			return nil, fmt.Errorf("vectorizer term %q maps to out-of-range column %d", term, col)
		}
	}

	return &c, nil
}

func readArtifact(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Classify labels a single text as LabelSensitive or LabelSafe.
//
// The text is lower-cased and tokenized, in-vocabulary term counts are
// weighted by idf and l2-normalized, and the linear decision rule is
// applied. Terms outside the training vocabulary are ignored. An empty
// text produces the zero vector, so the label follows the intercept's
// sign rather than any special case.
func (c *Classifier) Classify(text string) string {
	features := c.transform(text)

	score := c.model.Intercept
	for col, weight := range features {
		score += weight * c.model.Coef[col]
	}

	if score > 0 {
		return LabelSensitive
	}
	return LabelSafe
}

// transform builds the sparse tf-idf vector for one text.
func (c *Classifier) transform(text string) map[int]float64 {
	features := make(map[int]float64)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if col, ok := c.vec.Vocabulary[token]; ok {
			features[col] += c.vec.IDF[col]
		}
	}

	var sumSquares float64
	for _, v := range features {
		sumSquares += v * v
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for col := range features {
			features[col] /= norm
		}
	}

	return features
}
