package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	sqlmodels "github.com/Station-Manager/database/sqlite/models"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/aarondl/null/v8"
)

// QsoToTime returns the start of a contact: its QSO date and TIME_ON, in UTC.
func QsoToTime(qso types.Qso) (time.Time, error) {
	const op errors.Op = "converters.QsoToTime"
	d, err := ParseDate(op, qso.QsoDetails.QsoDate)
	if err != nil {
		return time.Time{}, err
	}
	return qsoStart(op, d, qso.QsoDetails.TimeOn)
}

// QsoToLocalDate returns the QSO date of a contact.
func QsoToLocalDate(qso types.Qso) (temporal.LocalDate, error) {
	const op errors.Op = "converters.QsoToLocalDate"
	return ParseDate(op, qso.QsoDetails.QsoDate)
}

// ModelQsoToTime returns the start of a stored contact, in UTC.
func ModelQsoToTime(m *sqlmodels.Qso) (time.Time, error) {
	const op errors.Op = "converters.ModelQsoToTime"
	d, err := modelQsoDate(op, m)
	if err != nil {
		return time.Time{}, err
	}
	on, err := logbookString(op, m.TimeOn, ErrMsgBadTimeFormat)
	if err != nil {
		return time.Time{}, err
	}
	return qsoStart(op, d, on)
}

// ModelQsoToLocalDate returns the QSO date of a stored contact.
func ModelQsoToLocalDate(m *sqlmodels.Qso) (temporal.LocalDate, error) {
	const op errors.Op = "converters.ModelQsoToLocalDate"
	return modelQsoDate(op, m)
}

func qsoStart(op errors.Op, d temporal.LocalDate, timeOn string) (time.Time, error) {
	on, err := ParseTime(op, timeOn)
	if err != nil {
		return time.Time{}, err
	}
	return d.In(time.UTC).Add(on), nil
}

// modelQsoDate reads qso_date, stored either as a time or as a logbook string.
func modelQsoDate(op errors.Op, m *sqlmodels.Qso) (temporal.LocalDate, error) {
	if m == nil {
		return temporal.LocalDate{}, errors.New(op).Msg(ErrMsgQsoDateEmpty)
	}
	switch v := any(m.QsoDate).(type) {
	case time.Time:
		if v.IsZero() {
			return temporal.LocalDate{}, errors.New(op).Msg(ErrMsgQsoDateEmpty)
		}
		return temporal.LocalDateOf(v), nil
	case null.Time:
		if !v.Valid {
			return temporal.LocalDate{}, errors.New(op).Msg(ErrMsgQsoDateEmpty)
		}
		return temporal.LocalDateOf(v.Time), nil
	}
	s, err := logbookString(op, m.QsoDate, ErrMsgBadDateFormat)
	if err != nil {
		return temporal.LocalDate{}, err
	}
	return ParseDate(op, s)
}

func logbookString(op errors.Op, v any, msg string) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case null.String:
		return s.String, nil
	}
	return "", errors.New(op).Errorf("%s: unsupported column type %T", msg, v)
}
