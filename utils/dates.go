package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheets arrive with whatever date style the sheet author used, so the
// importers accept ISO layouts, slash or dash dates in either day or month
// first order, and raw Excel serial numbers.

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

var fallbackLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 January 2006",
	time.ANSIC,
	time.UnixDate,
}

// Excel stores dates as days since this epoch (the off-by-two 1900 system).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var datePatterns = []*regexp.Regexp{
	// m/d/y or m-d-y, 2 or 4 digit year, optional time
	regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?)?$`),
	// y/m/d
	regexp.MustCompile(`^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?)?$`),
	// d/m/y, 4 digit year
	regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?)?$`),
}

// ParseFlexibleDate tries every supported date style in turn. The second
// return value reports whether anything matched; callers substitute their own
// default when it is false.
func ParseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	// Excel serial number. Values up to 59 are ambiguous with plain small
	// integers (and sit inside Excel's fictional Feb 1900), so they are not
	// treated as dates.
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial > 59 {
			return excelEpoch.Add(time.Duration(serial * float64(24*time.Hour))), true
		}
		return time.Time{}, false
	}

	for i, pattern := range datePatterns {
		match := pattern.FindStringSubmatch(value)
		if match == nil {
			continue
		}
		var year, month, day int
		switch i {
		case 0:
			month = atoi(match[1])
			day = atoi(match[2])
			year = atoi(match[3])
			if len(match[3]) == 2 {
				if year < 50 {
					year += 2000
				} else {
					year += 1900
				}
			}
		case 1:
			year = atoi(match[1])
			month = atoi(match[2])
			day = atoi(match[3])
		default:
			day = atoi(match[1])
			month = atoi(match[2])
			year = atoi(match[3])
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		hour, minute, sec := atoi(match[4]), atoi(match[5]), atoi(match[6])
		return time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
