package server

import "github.com/rezonia/nidkit/internal/country/albania"

// ValidateRequest is the request body for decode and validate endpoints.
// Nid is deliberately unconstrained here: the country validators own every
// input check, including length.
type ValidateRequest struct {
	Nid string `json:"nid"`
}

// DecodeResponse is returned for a successful decode
type DecodeResponse struct {
	Valid bool             `json:"valid"`
	Info  *albania.NidInfo `json:"info"`
}

// ValidateResponse is returned for a validation request
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Country string `json:"country"`
}

// ErrorResponse is returned when an input is rejected
type ErrorResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// CountryInfo describes one supported country
type CountryInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
