// Package albania validates and decodes Albanian National ID (NID) numbers.
//
// Albanian NIDs are 10-character alphanumeric strings that encode date of
// birth, sex, national status, and a checksum:
//
//	[decade][year_digit][month_code (2)][day (2)][serial (3)][checksum]
//
//   - Decade char: 0-9 maps to 1800-1890, A-T maps to 1900-2090.
//   - Month code encodes both the calendar month and sex/national status:
//     01-12 = male Albanian, 31-42 = male foreigner, 51-62 = female Albanian,
//     81-92 = female foreigner.
//   - Checksum: weighted sum of the first 9 characters mod 23.
//
// Input is treated case-insensitively. Decoding is a pure function with no
// I/O and no state.
package albania

import (
	"strings"

	"github.com/rezonia/nidkit/internal/model"
)

// Maps decade character position to base year: index * 10 + 1800.
const decadeChars = "0123456789ABCDEFGHIJKLMNOPQRST"

// Alphabet used for checksum computation and the 10th (check) character.
const checksumChars = "WABCDEFGHIJKLMNOPQRSTUV"

// NidInfo is the decoded information from a valid Albanian NID.
type NidInfo struct {
	// Birthday is the date of birth.
	Birthday model.Date `json:"birthday"`
	// Sex as encoded in the month code.
	Sex model.Sex `json:"sex"`
	// IsNational is true for Albanian nationals, false for foreign residents.
	IsNational bool `json:"is_national"`
}

// decodeMonthCode maps a two-digit month code to (offset, sex, isNational).
// The actual calendar month is code - offset.
func decodeMonthCode(code uint8) (uint8, model.Sex, bool, bool) {
	switch {
	case code >= 1 && code <= 12:
		return 0, model.SexMale, true, true
	case code >= 31 && code <= 42:
		return 30, model.SexMale, false, true
	case code >= 51 && code <= 62:
		return 50, model.SexFemale, true, true
	case code >= 81 && code <= 92:
		return 80, model.SexFemale, false, true
	default:
		return 0, "", false, false
	}
}

func verifyChecksum(b *[10]byte) error {
	checkChar := b[9]
	if strings.IndexByte(checksumChars, checkChar) < 0 {
		return &FormatError{Kind: FormatInvalidChecksumChar}
	}

	total := 0
	for i, ch := range b[:9] {
		// Position 0 uses weight 1 (not 0), so the decade char contributes
		// to the checksum.
		weight := i
		if i == 0 {
			weight = 1
		}
		var value int
		if ch >= '0' && ch <= '9' {
			value = int(ch - '0')
		} else {
			value = strings.IndexByte(checksumChars, ch)
			if value < 0 {
				return &FormatError{Kind: FormatInvalidChecksumChar}
			}
		}
		total += weight * value
	}

	if checksumChars[total%23] != checkChar {
		return &ChecksumError{}
	}
	return nil
}

// Decode parses an Albanian National ID string into its constituent parts.
//
// Checks run in a fixed order so that multiply-invalid input always reports
// the same error: length, decade character, digit span, checksum, month code,
// calendar date. The returned error is a *FormatError, *ChecksumError or
// *DateError.
func Decode(nid string) (*NidInfo, error) {
	if len(nid) != 10 {
		return nil, &FormatError{Kind: FormatInvalidLength}
	}
	var b [10]byte
	copy(b[:], nid)
	for i, ch := range b {
		if ch >= 'a' && ch <= 'z' {
			b[i] = ch - 'a' + 'A'
		}
	}

	decadeIndex := strings.IndexByte(decadeChars, b[0])
	if decadeIndex < 0 {
		return nil, &FormatError{Kind: FormatInvalidDecadeChar}
	}

	for _, ch := range b[1:9] {
		if ch < '0' || ch > '9' {
			return nil, &FormatError{Kind: FormatNonDigitCharacter}
		}
	}

	if err := verifyChecksum(&b); err != nil {
		return nil, err
	}

	year := 1800 + uint16(decadeIndex)*10 + uint16(b[1]-'0')
	monthCode := (b[2]-'0')*10 + (b[3]-'0')

	offset, sex, isNational, ok := decodeMonthCode(monthCode)
	if !ok {
		return nil, &FormatError{Kind: FormatInvalidMonthCode, Code: monthCode}
	}

	month := monthCode - offset
	day := (b[4]-'0')*10 + (b[5]-'0')

	birthday, ok := model.ValidateDate(year, month, day)
	if !ok {
		// The month-code gate keeps month inside 1-12, but classify anyway.
		if month < 1 || month > 12 {
			return nil, &DateError{Kind: DateMonthOutOfRange, Month: month}
		}
		return nil, &DateError{Kind: DateDayOutOfRange, Year: year, Month: month, Day: day}
	}

	return &NidInfo{
		Birthday:   birthday,
		Sex:        sex,
		IsNational: isNational,
	}, nil
}

// Validate checks an Albanian NID string, discarding the decoded record.
func Validate(nid string) error {
	_, err := Decode(nid)
	return err
}

// IsValid reports whether an Albanian NID string is valid.
func IsValid(nid string) bool {
	_, err := Decode(nid)
	return err == nil
}
