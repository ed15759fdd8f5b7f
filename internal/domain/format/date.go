package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StoredDateLayout  = "02/01/2006"
	ISODateLayout     = "2006-01-02"
	DisplayDateLayout = "Jan 02, 2006"
)

var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts dd/mm/yyyy and yyyy-mm-dd and returns midnight UTC.
// Impossible calendar dates such as 31/02/2025 are rejected.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range []string{StoredDateLayout, ISODateLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDate renders a stored date as "Jul 17, 2025"; unparseable input is
// returned unchanged.
func FormatDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(DisplayDateLayout)
}

// ISODate renders a stored date as yyyy-mm-dd, or returns it unchanged.
func ISODate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(ISODateLayout)
}
