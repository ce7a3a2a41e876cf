// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/identifiers/internal/adapters/http/dto"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

// DOIHandler handles HTTP requests for DOI validation and extraction.
type DOIHandler struct {
	svc ports.DOIService
}

// NewDOIHandler creates a new DOIHandler with the given service port.
func NewDOIHandler(svc ports.DOIService) *DOIHandler {
	return &DOIHandler{svc: svc}
}

// Validate handles POST /api/v1/dois/validate.
func (h *DOIHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.TextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.validate(w, r, req.Text)
}

// ValidateQuery handles GET /api/v1/dois/validate?text=....
func (h *DOIHandler) ValidateQuery(w http.ResponseWriter, r *http.Request) {
	req := dto.TextRequest{Text: r.URL.Query().Get("text")}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.validate(w, r, req.Text)
}

func (h *DOIHandler) validate(w http.ResponseWriter, r *http.Request, text string) {
	d, err := h.svc.Validate(r.Context(), text)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDOIResponse(d))
}

// Extract handles POST /api/v1/dois/extract.
func (h *DOIHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req dto.TextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dois, err := h.svc.Extract(r.Context(), req.Text)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExtractResponse(dois))
}

// ExtractBatch handles POST /api/v1/dois/extract/batch.
func (h *DOIHandler) ExtractBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchExtractRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	results, err := h.svc.ExtractBatch(r.Context(), req.Texts)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchExtractResponse(results))
}
