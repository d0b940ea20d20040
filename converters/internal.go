package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
)

func CheckLocalDate(op errors.Op, d temporal.LocalDate) error {
	if !d.IsValid() {
		return errors.New(op).Errorf("%s: %s", ErrMsgBadLocalDate, d)
	}
	return nil
}

func CheckLocalDateTime(op errors.Op, dt temporal.LocalDateTime) error {
	if !dt.IsValid() {
		return errors.New(op).Errorf("%s: %+v", ErrMsgBadLocalDateTime, dt)
	}
	return nil
}

// ParseDate parses a logbook date in YYYYMMDD or YYYY-MM-DD format.
func ParseDate(op errors.Op, s string) (temporal.LocalDate, error) {
	if s == "" {
		return temporal.LocalDate{}, errors.New(op).Msg(ErrMsgQsoDateEmpty)
	}
	var (
		t   time.Time
		err error
	)
	switch len(s) {
	case 8:
		t, err = time.Parse("20060102", s)
	case 10:
		if s[4] != '-' || s[7] != '-' {
			return temporal.LocalDate{}, errors.New(op).Msg(ErrMsgBadDateFormat)
		}
		t, err = time.Parse("2006-01-02", s)
	default:
		return temporal.LocalDate{}, errors.New(op).Msg(ErrMsgBadDateFormat)
	}
	if err != nil {
		return temporal.LocalDate{}, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return temporal.LocalDateOf(t), nil
}

// ParseTime parses a logbook time of day in HH:MM, HHMM or HHMMSS format and
// returns it as a duration since midnight.
func ParseTime(op errors.Op, s string) (time.Duration, error) {
	var layout string
	switch {
	case len(s) == 5 && s[2] == ':':
		layout = "15:04"
	case len(s) == 4:
		layout = "1504"
	case len(s) == 6:
		layout = "150405"
	default:
		return 0, errors.New(op).Msg(ErrMsgBadTimeFormat)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, nil
}
