// Package datemath provides proleptic Gregorian calendar arithmetic
// shared by the civil and tzdb packages. It deliberately avoids
// time.Location: these helpers feed the zone resolution machinery
// which is itself what a time.Location would be built from.
package datemath

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(month, year int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// DayOfWeek calculates the day of the week for a given date,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func DayOfWeek(day, month, year int) int {
	// Zeller's Congruence algorithm adjustment for Gregorian calendar
	if month < 3 {
		month += 12
		year -= 1
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (month + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	// Adjust result to fit Sunday=0, Monday=1, ..., Saturday=6
	return (h + 6) % 7
}

// YearDay returns the ordinal day of the year for the given date,
// 1 for January 1st up to 365 (366 in leap years) for December 31st.
func YearDay(day, month, year int) int {
	daysBefore := []int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	n := daysBefore[month-1] + day
	if month > 2 && IsLeapYear(year) {
		n++
	}
	return n
}
