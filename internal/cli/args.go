package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/spf13/pflag"
)

// parseDateArg accepts YYYY-MM-DD, "today", "yesterday" or an empty string
// (today).
func parseDateArg(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return domain.DateOnly(now), nil
	case "yesterday":
		return domain.DateOnly(now).AddDate(0, 0, -1), nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, today or yesterday", s)
	}
	return d, nil
}

// parseMonthArg accepts YYYY-MM, "last" or an empty string (this month).
func parseMonthArg(s string, now time.Time) (domain.YearMonth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "this":
		return domain.YearMonthOf(now), nil
	case "last", "prev":
		return domain.YearMonthOf(now).Prev(), nil
	}
	return domain.ParseYearMonth(s)
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// clockValue is a pflag.Value for HH:MM flags.
type clockValue struct {
	target *domain.ClockTime
}

var _ pflag.Value = (*clockValue)(nil)

func newClockValue(target *domain.ClockTime) *clockValue {
	return &clockValue{target: target}
}

func (v *clockValue) String() string {
	if v.target == nil {
		return ""
	}
	return v.target.String()
}

func (v *clockValue) Set(s string) error {
	c, err := domain.ParseClockTime(s)
	if err != nil {
		return err
	}
	*v.target = c
	return nil
}

func (v *clockValue) Type() string { return "HH:MM" }
