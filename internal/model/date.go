package model

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year uint16) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years. Returns 0 for months outside 1-12.
func DaysInMonth(year uint16, month uint8) uint8 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ValidateDate checks that (year, month, day) forms a real calendar date and
// returns the Date value. This is the only way a Date is constructed, so an
// invalid Date never exists.
func ValidateDate(year uint16, month, day uint8) (Date, bool) {
	if month < 1 || month > 12 {
		return Date{}, false
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}
