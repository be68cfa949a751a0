package audit

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidDateFormat is returned by BirthTokens when the input is not a
// real calendar date in DD.MM.YYYY form.
var ErrInvalidDateFormat = errors.New("date of birth must be a valid calendar date in DD.MM.YYYY format")

const dobLayout = "02.01.2006"

// BirthTokens derives the numeric fragments of a date of birth that commonly
// end up inside passwords: the day, month, four- and two-digit year, and the
// usual concatenations (ddmm, mmdd, yyyymmdd, ddmmyyyy, yymmdd, ddmmyy).
// Tokens that coincide in value (e.g. day equals month) collapse to one
// entry. The result is sorted for deterministic iteration.
func BirthTokens(dob string) ([]string, error) {
	dt, err := time.Parse(dobLayout, dob)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	dd := fmt.Sprintf("%02d", dt.Day())
	mm := fmt.Sprintf("%02d", int(dt.Month()))
	yyyy := fmt.Sprintf("%04d", dt.Year())
	yy := yyyy[2:]

	set := make(map[string]struct{}, 10)
	for _, t := range []string{
		dd, mm, yyyy, yy,
		dd + mm, mm + dd,
		yyyy + mm + dd, dd + mm + yyyy,
		yy + mm + dd, dd + mm + yy,
	} {
		set[t] = struct{}{}
	}

	tokens := make([]string, 0, len(set))
	for t := range set {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens, nil
}
