// Package country dispatches validation requests to the per-country modules.
//
// The registry holds no validation logic of its own. Each country package is
// free-standing; the registry only routes a country code to the right
// Validate function and maps typed errors to stable kind strings for
// boundary adapters (CLI, HTTP).
package country

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rezonia/nidkit/internal/country/albania"
	"github.com/rezonia/nidkit/internal/country/kosovo"
)

// Code is an ISO 3166-1 alpha-2 country code.
type Code string

const (
	CodeAlbania Code = "AL"
	CodeKosovo  Code = "XK"
)

// Validator validates national ID strings for a single country.
type Validator interface {
	// Code returns the country code.
	Code() Code

	// Name returns the human-readable country name.
	Name() string

	// Validate checks a national ID string, returning the country's typed
	// error on rejection.
	Validate(nid string) error

	// IsValid reports whether a national ID string is valid.
	IsValid(nid string) bool
}

type albaniaValidator struct{}

func (albaniaValidator) Code() Code                { return CodeAlbania }
func (albaniaValidator) Name() string              { return "Albania" }
func (albaniaValidator) Validate(nid string) error { return albania.Validate(nid) }
func (albaniaValidator) IsValid(nid string) bool   { return albania.IsValid(nid) }

type kosovoValidator struct{}

func (kosovoValidator) Code() Code                { return CodeKosovo }
func (kosovoValidator) Name() string              { return "Kosovo" }
func (kosovoValidator) Validate(nid string) error { return kosovo.Validate(nid) }
func (kosovoValidator) IsValid(nid string) bool   { return kosovo.IsValid(nid) }

// Registry holds all registered country validators.
type Registry struct {
	validators []Validator
}

// NewRegistry creates a registry with all supported countries.
func NewRegistry() *Registry {
	return &Registry{
		validators: []Validator{
			albaniaValidator{},
			kosovoValidator{},
		},
	}
}

// Register adds a custom validator. It takes priority over built-in
// validators with the same code.
func (r *Registry) Register(v Validator) {
	r.validators = append([]Validator{v}, r.validators...)
}

// Get returns the validator for a country code, matched case-insensitively.
func (r *Registry) Get(code Code) Validator {
	for _, v := range r.validators {
		if strings.EqualFold(string(v.Code()), string(code)) {
			return v
		}
	}
	return nil
}

// Validate routes a national ID string to the validator for code.
func (r *Registry) Validate(code Code, nid string) error {
	v := r.Get(code)
	if v == nil {
		return fmt.Errorf("unsupported country code: %s", code)
	}
	return v.Validate(nid)
}

// Codes returns the registered country codes in registration order.
func (r *Registry) Codes() []Code {
	codes := make([]Code, 0, len(r.validators))
	for _, v := range r.validators {
		codes = append(codes, v.Code())
	}
	return codes
}

// ErrorKind maps a validation error to its stable machine-readable kind
// string, for boundary adapters that key responses off the error kind.
// Returns the empty string for nil and "unknown" for unrecognized errors.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	var alFormat *albania.FormatError
	if errors.As(err, &alFormat) {
		return alFormat.Kind.String()
	}
	var alDate *albania.DateError
	if errors.As(err, &alDate) {
		return alDate.Kind.String()
	}
	var alChecksum *albania.ChecksumError
	if errors.As(err, &alChecksum) {
		return "checksum_mismatch"
	}

	var xkFormat *kosovo.FormatError
	if errors.As(err, &xkFormat) {
		return xkFormat.Kind.String()
	}
	var xkChecksum *kosovo.ChecksumError
	if errors.As(err, &xkChecksum) {
		return "checksum_mismatch"
	}

	return "unknown"
}
