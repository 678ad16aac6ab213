package handler

import (
	"encoding/json"
	"net/http"

	"github.com/accrypt/accrypt-go/internal/model"
	"github.com/accrypt/accrypt-go/internal/service"
)

// defaultThreshold is applied when a threshold request omits the field.
const defaultThreshold = 0.5

// AnalysisHandler handles HTTP requests for the classification and text
// utility endpoints.
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: svc}
}

// HandlePredict handles POST /predict requests. An empty or absent text
// is rejected before the classifier is consulted, so the 400 applies
// regardless of model load state.
func (h *AnalysisHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req model.PredictRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("No text provided"))
		return
	}

	writeJSON(w, http.StatusOK, model.PredictResponse{
		Prediction: h.service.Predict(req.Text),
	})
}

// HandleValidateEmail handles POST /validate-email requests, echoing the
// checked address alongside the verdict.
func (h *AnalysisHandler) HandleValidateEmail(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateEmailRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("Email field missing"))
		return
	}

	writeJSON(w, http.StatusOK, model.ValidateEmailResponse{
		Email: req.Email,
		Valid: h.service.ValidateEmail(req.Email),
	})
}

// HandleTopWords handles POST /top-words requests. The emails field must
// be a non-empty JSON array of strings.
func (h *AnalysisHandler) HandleTopWords(w http.ResponseWriter, r *http.Request) {
	var req model.TopWordsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	emails, ok := decodeStringList(req.Emails)
	if !ok || len(emails) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("List of emails required"))
		return
	}

	writeJSON(w, http.StatusOK, model.TopWordsResponse{
		TopWords: h.service.TopWords(emails),
	})
}

// HandleThreshold handles POST /test-threshold requests. An absent probs
// field counts as an empty list; an explicit null or any value that is
// not a list of numbers is rejected. Labels preserve the order and
// length of probs.
func (h *AnalysisHandler) HandleThreshold(w http.ResponseWriter, r *http.Request) {
	var req model.ThresholdRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var probs []float64
	if len(req.Probs) > 0 {
		// Unmarshal accepts null silently, so reject it up front.
		if string(req.Probs) == "null" || json.Unmarshal(req.Probs, &probs) != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("List of probabilities required"))
			return
		}
	}

	threshold := defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	writeJSON(w, http.StatusOK, model.ThresholdResponse{
		Threshold: threshold,
		Labels:    h.service.Threshold(probs, threshold),
	})
}

// decodeStringList parses a raw JSON value as a list of strings. Absent
// and null values, non-list values and non-string elements all fail.
func decodeStringList(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}
