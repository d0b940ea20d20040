package converters

const (
	ErrMsgBadTimeFormat    = "Bad time format, expected HH:MM, HHMM or HHMMSS"
	ErrMsgBadDateFormat    = "Bad date format, expected YYYYMMDD or YYYY-MM-DD"
	ErrMsgBadLocalDate     = "Local date out of range"
	ErrMsgBadLocalDateTime = "Local date-time out of range"
	ErrMsgQsoDateEmpty     = "QSO date cannot be empty."
)
