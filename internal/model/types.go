// Package model defines the value types shared by the country decoders.
//
// Date and Sex are small immutable values. A Date is only ever produced by
// ValidateDate, so every Date that exists in the program is a real calendar
// date.
package model

import "fmt"

// Sex as encoded in a national ID.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// String returns the canonical single-character rendering.
func (s Sex) String() string {
	return string(s)
}

// Date is a calendar date (year, month, day).
type Date struct {
	Year  uint16 `json:"year"`
	Month uint8  `json:"month"`
	Day   uint8  `json:"day"`
}

// String renders the date as zero-padded YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is earlier than other, comparing
// (year, month, day) lexicographically.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}
