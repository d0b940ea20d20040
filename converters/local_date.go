package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
)

func XMLGregorianCalendarToLocalDate(x temporal.XMLGregorianCalendar) (temporal.LocalDate, error) {
	dt, err := XMLGregorianCalendarToLocalDateTime(x)
	if err != nil {
		return temporal.LocalDate{}, err
	}
	return dt.Date(), nil
}

func LocalDateToLocalDate(d temporal.LocalDate) (temporal.LocalDate, error) { return d, nil }

func LocalDateTimeToLocalDate(dt temporal.LocalDateTime) (temporal.LocalDate, error) {
	const op errors.Op = "converters.LocalDateTimeToLocalDate"
	if err := CheckLocalDateTime(op, dt); err != nil {
		return temporal.LocalDate{}, err
	}
	return dt.Date(), nil
}

func TimeToLocalDate(t time.Time) (temporal.LocalDate, error) {
	return temporal.LocalDateOf(t), nil
}

func DateToLocalDate(d temporal.Date) (temporal.LocalDate, error) {
	return TimeToLocalDate(d.Time())
}

func CalendarToLocalDate(c temporal.Calendrical) (temporal.LocalDate, error) {
	return TimeToLocalDate(c.Time())
}
