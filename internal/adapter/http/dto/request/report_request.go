package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/domain/format"
)

var (
	ErrInvalidFromDate = errors.New("invalid from date")
	ErrInvalidToDate   = errors.New("invalid to date")
)

// ReportQuery carries the list filters taken from the query string.
//
// Dates accept yyyy-mm-dd or dd/mm/yyyy. An empty type or "All" matches every
// patient type.
type ReportQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Type   string `form:"type"`
	Sort   string `form:"sort"`
	Search string `form:"q"`
}

func (q ReportQuery) Criteria() (entities.FilterCriteria, error) {
	c := entities.FilterCriteria{
		Type:   entities.PatientType(strings.TrimSpace(q.Type)),
		Search: q.Search,
	}
	var err error
	if c.From, err = parseBound(q.From); err != nil {
		return entities.FilterCriteria{}, fmt.Errorf("%w: %v", ErrInvalidFromDate, err)
	}
	if c.To, err = parseBound(q.To); err != nil {
		return entities.FilterCriteria{}, fmt.Errorf("%w: %v", ErrInvalidToDate, err)
	}
	return c, nil
}

func (q ReportQuery) SortKey() entities.SortKey {
	return entities.SortKey(strings.ToLower(strings.TrimSpace(q.Sort)))
}

func (q ReportQuery) OverviewSortKey() entities.OverviewSortKey {
	return entities.OverviewSortKey(strings.ToLower(strings.TrimSpace(q.Sort)))
}

func parseBound(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return format.ParseDate(s)
}
