// Package nidlib provides the public API for validating and decoding
// national identification numbers.
//
// Each supported country has its own decode/validate entry points. Every
// operation is a pure function: no I/O, no state, and calls are safe to make
// concurrently.
//
// Example usage:
//
//	info, err := nidlib.DecodeAlbania("J00101999W")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.Birthday) // 1990-01-01
package nidlib

import (
	"github.com/rezonia/nidkit/internal/country"
	"github.com/rezonia/nidkit/internal/country/albania"
	"github.com/rezonia/nidkit/internal/country/kosovo"
	"github.com/rezonia/nidkit/internal/model"
)

// Re-export core value types for the public API.
type (
	Date    = model.Date
	Sex     = model.Sex
	NidInfo = albania.NidInfo
)

// Re-export sex constants.
const (
	SexMale   = model.SexMale
	SexFemale = model.SexFemale
)

// Re-export country codes.
type CountryCode = country.Code

const (
	CountryAlbania = country.CodeAlbania
	CountryKosovo  = country.CodeKosovo
)

// DecodeAlbania parses an Albanian National ID into its constituent parts.
func DecodeAlbania(nid string) (*NidInfo, error) {
	return albania.Decode(nid)
}

// ValidateAlbania checks an Albanian National ID, discarding the record.
func ValidateAlbania(nid string) error {
	return albania.Validate(nid)
}

// IsValidAlbania reports whether an Albanian National ID is valid.
func IsValidAlbania(nid string) bool {
	return albania.IsValid(nid)
}

// ValidateKosovo checks a Kosovo personal number. Kosovo numbers carry no
// decodable fields, so there is no decode counterpart.
func ValidateKosovo(nid string) error {
	return kosovo.Validate(nid)
}

// IsValidKosovo reports whether a Kosovo personal number is valid.
func IsValidKosovo(nid string) bool {
	return kosovo.IsValid(nid)
}

// Validate routes a national ID string to the validator for the given
// country code.
func Validate(code CountryCode, nid string) error {
	return defaultRegistry.Validate(code, nid)
}

// IsValid reports whether nid is valid for the given country code. Unknown
// country codes are reported as invalid.
func IsValid(code CountryCode, nid string) bool {
	return defaultRegistry.Validate(code, nid) == nil
}

// SupportedCountries returns the country codes with a registered validator.
func SupportedCountries() []CountryCode {
	return defaultRegistry.Codes()
}

// ErrorKind returns the stable machine-readable kind string for a validation
// error, or "" for nil.
func ErrorKind(err error) string {
	return country.ErrorKind(err)
}

var defaultRegistry = country.NewRegistry()
