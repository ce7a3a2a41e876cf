// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/identifiers/doi"
	"github.com/jsamuelsen11/identifiers/internal/ports"
)

// DOIResponse represents a single DOI in HTTP responses.
type DOIResponse struct {
	DOI    doi.DOI `json:"doi"`
	Prefix string  `json:"prefix"`
	Suffix string  `json:"suffix"`
}

// ExtractResponse represents the DOIs found in one text.
type ExtractResponse struct {
	DOIs  []DOIResponse `json:"dois"`
	Count int           `json:"count"`
}

// ToDOIResponse converts a DOI to an HTTP response DTO.
func ToDOIResponse(d doi.DOI) DOIResponse {
	return DOIResponse{
		DOI:    d,
		Prefix: d.Prefix(),
		Suffix: d.Suffix(),
	}
}

// ToExtractResponse converts extracted DOIs to an HTTP response DTO.
// The dois field is always a JSON array, never null.
func ToExtractResponse(dois []doi.DOI) ExtractResponse {
	items := make([]DOIResponse, len(dois))
	for i, d := range dois {
		items[i] = ToDOIResponse(d)
	}
	return ExtractResponse{
		DOIs:  items,
		Count: len(items),
	}
}

// BatchExtractResponse represents the result of a batch extraction.
// It includes both successful extractions and per-item errors.
type BatchExtractResponse struct {
	Results   []BatchItemResponse `json:"results"`
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// BatchItemResponse represents the outcome for a single text within a batch.
type BatchItemResponse struct {
	Index int           `json:"index"`
	DOIs  []DOIResponse `json:"dois"`
	Count int           `json:"count"`
	Error string        `json:"error,omitempty"`
}

// ToBatchExtractResponse converts batch results to an HTTP response DTO.
func ToBatchExtractResponse(results []ports.BatchResult) BatchExtractResponse {
	resp := BatchExtractResponse{
		Results: make([]BatchItemResponse, len(results)),
		Total:   len(results),
	}

	for i, r := range results {
		item := BatchItemResponse{Index: r.Index}
		if r.Err != nil {
			item.DOIs = []DOIResponse{}
			item.Error = r.Err.Error()
			resp.Failed++
		} else {
			extracted := ToExtractResponse(r.DOIs)
			item.DOIs = extracted.DOIs
			item.Count = extracted.Count
			resp.Succeeded++
		}
		resp.Results[i] = item
	}

	return resp
}

// URLExtractResponse represents the DOIs found in a remote document.
type URLExtractResponse struct {
	URL string `json:"url"`
	ExtractResponse
}

// ToURLExtractResponse converts DOIs extracted from rawURL to an HTTP
// response DTO.
func ToURLExtractResponse(rawURL string, dois []doi.DOI) URLExtractResponse {
	return URLExtractResponse{
		URL:             rawURL,
		ExtractResponse: ToExtractResponse(dois),
	}
}
