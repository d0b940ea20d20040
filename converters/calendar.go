package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
)

// Conversions to temporal.Calendar. Calendars built from zone-less or
// legacy values are in UTC.

// CalendarToCalendar is registered for every concrete calendar type and
// keeps the source zone.
func CalendarToCalendar(c temporal.Calendrical) (temporal.Calendar, error) {
	return temporal.NewCalendar(c.Time()), nil
}

func XMLGregorianCalendarToCalendar(x temporal.XMLGregorianCalendar) (temporal.Calendar, error) {
	const op errors.Op = "converters.XMLGregorianCalendarToCalendar"
	if err := x.Validate(); err != nil {
		return temporal.Calendar{}, errors.New(op).Err(err)
	}
	return TimeToCalendar(x.ToTime(time.UTC))
}

func LocalDateToCalendar(d temporal.LocalDate) (temporal.Calendar, error) {
	const op errors.Op = "converters.LocalDateToCalendar"
	if err := CheckLocalDate(op, d); err != nil {
		return temporal.Calendar{}, err
	}
	return LocalDateTimeToCalendar(d.AtStartOfDay())
}

func LocalDateTimeToCalendar(dt temporal.LocalDateTime) (temporal.Calendar, error) {
	const op errors.Op = "converters.LocalDateTimeToCalendar"
	if err := CheckLocalDateTime(op, dt); err != nil {
		return temporal.Calendar{}, err
	}
	return TimeToCalendar(dt.In(time.UTC))
}

func TimeToCalendar(t time.Time) (temporal.Calendar, error) {
	return temporal.NewCalendar(t.UTC()), nil
}

// DateToCalendar also serves SQLDate, which resolves through Date.
func DateToCalendar(d temporal.Date) (temporal.Calendar, error) {
	return TimeToCalendar(d.Time())
}

func TimestampToCalendar(ts temporal.Timestamp) (temporal.Calendar, error) {
	return TimeToCalendar(ts.Time())
}
