package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/identifiers/internal/adapters/http/dto"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

// DocumentHandler handles HTTP requests that extract DOIs from remote
// documents.
type DocumentHandler struct {
	svc ports.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler with the given service port.
func NewDocumentHandler(svc ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ExtractURL handles POST /api/v1/dois/extract/url.
func (h *DocumentHandler) ExtractURL(w http.ResponseWriter, r *http.Request) {
	var req dto.URLRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dois, err := h.svc.ExtractURL(r.Context(), req.URL)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToURLExtractResponse(req.URL, dois))
}
