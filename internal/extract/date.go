package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

// Default bounds for an acceptable receipt year. A resolved year outside this
// window is almost always an OCR misread, not an old receipt.
const (
	DefaultMinYear = 2020
	DefaultMaxYear = 2030
)

// eraOffsets maps Japanese era names to the offset added to the era-relative
// year to obtain the Gregorian year (令和1 = 2019, 平成1 = 1989, 昭和1 = 1926).
var eraOffsets = map[string]int{
	"令和": 2018,
	"平成": 1988,
	"昭和": 1925,
}

var (
	dateYMD  = regexp.MustCompile(`(\d{4})[/\-年.](\d{1,2})[/\-月.](\d{1,2})日?`)
	dateMDY  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	dateYYMD = regexp.MustCompile(`\b(\d{2})/(\d{1,2})/(\d{1,2})\b`)
	dateEra  = regexp.MustCompile(`(令和|平成|昭和)\s*(\d{1,2})年\s*(\d{1,2})月\s*(\d{1,2})日`)
)

// Date scans normalized lines for a purchase date, trying four shapes per
// line: YYYY/MM/DD, MM/DD/YYYY, YY/MM/DD, and era-based forms. The first
// match whose resolved year falls within [minYear, maxYear] and whose month
// and day are in calendar range wins. No match yields the empty string,
// which is an absent date, not an error.
func Date(lines []string, minYear, maxYear int) string {
	if minYear == 0 {
		minYear = DefaultMinYear
	}
	if maxYear == 0 {
		maxYear = DefaultMaxYear
	}

	for _, line := range lines {
		if m := dateYMD.FindStringSubmatch(line); m != nil {
			if date, ok := resolve(atoi(m[1]), atoi(m[2]), atoi(m[3]), minYear, maxYear); ok {
				return date
			}
		}
		if m := dateMDY.FindStringSubmatch(line); m != nil {
			if date, ok := resolve(atoi(m[3]), atoi(m[1]), atoi(m[2]), minYear, maxYear); ok {
				return date
			}
		}
		if m := dateYYMD.FindStringSubmatch(line); m != nil {
			if date, ok := resolve(2000+atoi(m[1]), atoi(m[2]), atoi(m[3]), minYear, maxYear); ok {
				return date
			}
		}
		if m := dateEra.FindStringSubmatch(line); m != nil {
			year := eraOffsets[m[1]] + atoi(m[2])
			if date, ok := resolve(year, atoi(m[3]), atoi(m[4]), minYear, maxYear); ok {
				return date
			}
		}
	}
	return ""
}

func resolve(year, month, day, minYear, maxYear int) (string, bool) {
	if year < minYear || year > maxYear {
		return "", false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
