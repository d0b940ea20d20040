package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
)

// Conversions to temporal.LocalDateTime. A LocalDateTime carries no zone, so
// zoned sources keep their own wall clock and legacy sources are read in UTC.

func XMLGregorianCalendarToLocalDateTime(x temporal.XMLGregorianCalendar) (temporal.LocalDateTime, error) {
	const op errors.Op = "converters.XMLGregorianCalendarToLocalDateTime"
	if err := x.Validate(); err != nil {
		return temporal.LocalDateTime{}, errors.New(op).Err(err)
	}
	return TimeToLocalDateTime(x.ToTime(time.UTC))
}

func LocalDateToLocalDateTime(d temporal.LocalDate) (temporal.LocalDateTime, error) {
	const op errors.Op = "converters.LocalDateToLocalDateTime"
	if err := CheckLocalDate(op, d); err != nil {
		return temporal.LocalDateTime{}, err
	}
	return d.AtStartOfDay(), nil
}

func TimeToLocalDateTime(t time.Time) (temporal.LocalDateTime, error) {
	return temporal.LocalDateTimeOf(t), nil
}

func LocalDateTimeToLocalDateTime(dt temporal.LocalDateTime) (temporal.LocalDateTime, error) {
	return dt, nil
}

func DateToLocalDateTime(d temporal.Date) (temporal.LocalDateTime, error) {
	return TimeToLocalDateTime(d.Time())
}

func TimestampToLocalDateTime(ts temporal.Timestamp) (temporal.LocalDateTime, error) {
	return TimeToLocalDateTime(ts.Time())
}

func CalendarToLocalDateTime(c temporal.Calendrical) (temporal.LocalDateTime, error) {
	return TimeToLocalDateTime(c.Time())
}
