package kosovo

// FormatKind identifies the specific formatting rule an input violated.
type FormatKind int

const (
	// FormatInvalidLength means the input is not exactly 10 characters.
	FormatInvalidLength FormatKind = iota
	// FormatNonDigitCharacter means not all characters are ASCII digits.
	FormatNonDigitCharacter
)

// String returns a stable machine-readable code for the kind.
func (k FormatKind) String() string {
	switch k {
	case FormatInvalidLength:
		return "invalid_length"
	case FormatNonDigitCharacter:
		return "non_digit_character"
	default:
		return "unknown"
	}
}

// FormatError reports malformed input: wrong length or non-digit characters.
type FormatError struct {
	Kind FormatKind
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case FormatInvalidLength:
		return "format error: personal number must be exactly 10 digits"
	case FormatNonDigitCharacter:
		return "format error: all characters must be ASCII digits"
	default:
		return "format error"
	}
}

// ChecksumError reports that the check digit does not match the computed
// value.
type ChecksumError struct{}

func (e *ChecksumError) Error() string {
	return "checksum validation failed"
}
