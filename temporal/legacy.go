package temporal

import "time"

// Date is an instant with millisecond precision, counted from the Unix epoch.
type Date struct {
	Millis int64
}

func DateOf(t time.Time) Date { return Date{Millis: t.UnixMilli()} }

// Time returns d in UTC.
func (d Date) Time() time.Time { return time.UnixMilli(d.Millis).UTC() }

// SQLDate is a Date holding midnight UTC of a calendar day.
type SQLDate struct {
	Date
}

// SQLDateOf returns midnight UTC of the calendar day of t in t's location.
func SQLDateOf(t time.Time) SQLDate {
	y, m, d := t.Date()
	return SQLDate{Date: DateOf(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// Timestamp is a Date carrying nanosecond precision. Nanos is the full
// fraction of the second; Millis keeps the millisecond-truncated instant.
type Timestamp struct {
	Date
	Nanos int32
}

func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Date: DateOf(t), Nanos: int32(t.Nanosecond())}
}

// Time returns ts in UTC with its full precision.
func (ts Timestamp) Time() time.Time {
	sec := ts.Millis / 1000
	if ts.Millis%1000 < 0 {
		sec--
	}
	return time.Unix(sec, int64(ts.Nanos)).UTC()
}
