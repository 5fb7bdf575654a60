package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TimeFormatSeconds is accepted on read for rows written by older
	// revisions that stored seconds. Times are normalized to TimeFormat
	// on write.
	TimeFormatSeconds = "15:04:05"
)
