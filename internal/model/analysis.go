package model

import "encoding/json"

// PredictRequest represents a text classification request.
type PredictRequest struct {
	Text string `json:"text"`
}

// PredictResponse carries the classifier label for a single text.
type PredictResponse struct {
	Prediction string `json:"prediction"`
}

// ValidateEmailRequest represents an email syntax check request.
type ValidateEmailRequest struct {
	Email string `json:"email"`
}

// ValidateEmailResponse echoes the checked address alongside the verdict.
type ValidateEmailResponse struct {
	Email string `json:"email"`
	Valid bool   `json:"valid"`
}

// TopWordsRequest represents a word-frequency extraction request.
// Emails is kept raw so the handler can tell an absent field, an empty
// list and a non-list value apart.
type TopWordsRequest struct {
	Emails json.RawMessage `json:"emails"`
}

// TopWordsResponse lists the most frequent tokens with their counts.
type TopWordsResponse struct {
	TopWords []WordCount `json:"top_words"`
}

// ThresholdRequest represents a threshold labeling request.
// Threshold is a pointer so a missing field can default to 0.5.
type ThresholdRequest struct {
	Probs     json.RawMessage `json:"probs"`
	Threshold *float64        `json:"threshold"`
}

// ThresholdResponse echoes the applied threshold with one label per input
// probability, in input order.
type ThresholdResponse struct {
	Threshold float64  `json:"threshold"`
	Labels    []string `json:"labels"`
}

// WordCount is a token and its occurrence count. It serializes as a
// two-element array ["word", count] to keep the wire format of top_words.
type WordCount struct {
	Word  string
	Count int
}

// MarshalJSON encodes the pair as ["word", count].
func (w WordCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{w.Word, w.Count})
}

// UnmarshalJSON decodes the ["word", count] pair form.
func (w *WordCount) UnmarshalJSON(data []byte) error {
	var pair struct {
		Word  string
		Count int
	}
	raw := [2]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &pair.Word); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &pair.Count); err != nil {
		return err
	}
	w.Word = pair.Word
	w.Count = pair.Count
	return nil
}
