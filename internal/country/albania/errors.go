package albania

import "fmt"

// FormatKind identifies the specific formatting rule an input violated.
type FormatKind int

const (
	// FormatInvalidLength means the input is not exactly 10 characters.
	FormatInvalidLength FormatKind = iota
	// FormatInvalidDecadeChar means the first character is not in 0-9, A-T.
	FormatInvalidDecadeChar
	// FormatNonDigitCharacter means characters 2-9 are not all ASCII digits.
	FormatNonDigitCharacter
	// FormatInvalidChecksumChar means the 10th character is not in the
	// checksum alphabet.
	FormatInvalidChecksumChar
	// FormatInvalidMonthCode means the two-digit month code does not map to
	// any known range.
	FormatInvalidMonthCode
)

// String returns a stable machine-readable code for the kind.
func (k FormatKind) String() string {
	switch k {
	case FormatInvalidLength:
		return "invalid_length"
	case FormatInvalidDecadeChar:
		return "invalid_decade_char"
	case FormatNonDigitCharacter:
		return "non_digit_character"
	case FormatInvalidChecksumChar:
		return "invalid_checksum_char"
	case FormatInvalidMonthCode:
		return "invalid_month_code"
	default:
		return "unknown"
	}
}

// FormatError reports malformed input: wrong length, illegal characters, or
// an unrecognized month code.
type FormatError struct {
	Kind FormatKind
	// Code holds the raw two-digit month code for FormatInvalidMonthCode.
	Code uint8
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case FormatInvalidLength:
		return "format error: NID must be exactly 10 characters"
	case FormatInvalidDecadeChar:
		return "format error: first character out of range"
	case FormatNonDigitCharacter:
		return "format error: characters 2-9 must be ASCII digits"
	case FormatInvalidChecksumChar:
		return "format error: invalid checksum character"
	case FormatInvalidMonthCode:
		return fmt.Sprintf("format error: invalid month code: %d", e.Code)
	default:
		return "format error"
	}
}

// ChecksumError reports that the input is structurally well-formed but the
// checksum character does not match the computed value. This usually
// indicates a transcription error.
type ChecksumError struct{}

func (e *ChecksumError) Error() string {
	return "checksum validation failed"
}

// DateKind identifies why a decoded date failed calendar validation.
type DateKind int

const (
	// DateMonthOutOfRange means the decoded month is outside 1-12.
	DateMonthOutOfRange DateKind = iota
	// DateDayOutOfRange means the decoded day is outside the valid range for
	// the decoded year and month.
	DateDayOutOfRange
)

// String returns a stable machine-readable code for the kind.
func (k DateKind) String() string {
	switch k {
	case DateMonthOutOfRange:
		return "month_out_of_range"
	case DateDayOutOfRange:
		return "day_out_of_range"
	default:
		return "unknown"
	}
}

// DateError reports that the encoded birth date is not a valid calendar date.
// Year, Month and Day carry the offending decoded values.
type DateError struct {
	Kind  DateKind
	Year  uint16
	Month uint8
	Day   uint8
}

func (e *DateError) Error() string {
	switch e.Kind {
	case DateMonthOutOfRange:
		return fmt.Sprintf("invalid date: month %d out of range", e.Month)
	case DateDayOutOfRange:
		return fmt.Sprintf("invalid date: day %d is out of range for %d-%02d", e.Day, e.Year, e.Month)
	default:
		return "invalid date"
	}
}
