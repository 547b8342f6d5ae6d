// Package kosovo validates Kosovo personal numbers.
//
// Kosovo personal numbers are 10-digit numeric strings assigned by the Civil
// Registration Agency. The first 9 digits are an opaque payload and the 10th
// is a check digit:
//
//	check = 11 - (sum of digits 1-9 weighted by [4 3 2 7 6 5 4 3 2]) mod 11
//	if check == 10 -> use 0
//	if check == 11 -> use 0
//
// Numbers starting with '9' bypass check digit validation. The scheme
// exposes no decodable fields, so there is no Decode, only Validate.
package kosovo

var weights = [9]uint16{4, 3, 2, 7, 6, 5, 4, 3, 2}

// Validate checks a Kosovo personal number string. The returned error is a
// *FormatError or *ChecksumError.
func Validate(nid string) error {
	if len(nid) != 10 {
		return &FormatError{Kind: FormatInvalidLength}
	}
	for i := 0; i < 10; i++ {
		if nid[i] < '0' || nid[i] > '9' {
			return &FormatError{Kind: FormatNonDigitCharacter}
		}
	}

	// Numbers starting with '9' bypass check digit validation.
	if nid[0] == '9' {
		return nil
	}

	var sum uint16
	for i := 0; i < 9; i++ {
		sum += uint16(nid[i]-'0') * weights[i]
	}

	check := 11 - sum%11
	if check == 10 {
		check = 0
	}
	if check == 11 {
		check = 0
	}

	if check != uint16(nid[9]-'0') {
		return &ChecksumError{}
	}
	return nil
}

// IsValid reports whether a Kosovo personal number string is valid.
func IsValid(nid string) bool {
	return Validate(nid) == nil
}
