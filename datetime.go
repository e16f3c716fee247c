package toml

import "fmt"

// DateTimeKind discriminates which of the four TOML datetime forms a
// DateTime value holds.
type DateTimeKind int

const (
	// KindOffsetDateTime is a full RFC 3339 timestamp with a UTC offset.
	KindOffsetDateTime DateTimeKind = iota
	// KindLocalDateTime has a date and time but no offset.
	KindLocalDateTime
	// KindLocalDate has only a date.
	KindLocalDate
	// KindLocalTime has only a time.
	KindLocalTime
)

// Date is a calendar date. Month is 1-12, Day is 1-31 (validated against
// the month and leap-year rules at construction time).
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// Time is a time of day with nanosecond precision.
type Time struct {
	Hour   uint8
	Minute uint8
	Second uint8
	Nanos  uint32
}

// OffsetKind discriminates a UTC offset of exactly zero ("Z") from an
// explicit +HH:MM/-HH:MM offset, since TOML treats them as distinct
// spellings of potentially the same instant.
type OffsetKind int

const (
	// OffsetZ is the literal "Z" / "z" UTC designator.
	OffsetZ OffsetKind = iota
	// OffsetHM is an explicit signed hour:minute offset.
	OffsetHM
)

// Offset is a UTC offset, either the "Z" designator or a signed hour:minute
// pair.
type Offset struct {
	Kind     OffsetKind
	Negative bool
	Hours    uint8
	Minutes  uint8
}

// DateTime is an algebraic TOML datetime value: depending on Kind, only the
// relevant fields are meaningful.
type DateTime struct {
	Kind   DateTimeKind
	Date   Date
	Time   Time
	Offset Offset
}

var daysInMonth = [...]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year uint16) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year uint16, month uint8) uint8 {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// validateDate checks the month/day component ranges and leap-year rules.
func validateDate(d Date) error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("month %d out of range", d.Month)
	}
	max := daysIn(d.Year, d.Month)
	if d.Day < 1 || d.Day > max {
		return fmt.Errorf("day %d out of range for %04d-%02d", d.Day, d.Year, d.Month)
	}
	return nil
}

// validateTime checks the hour/minute/second component ranges. Seconds may
// be 60 to permit a leap second per RFC 3339; TOML 1.1 does not otherwise
// relax this.
func validateTime(t Time) error {
	if t.Hour > 23 {
		return fmt.Errorf("hour %d out of range", t.Hour)
	}
	if t.Minute > 59 {
		return fmt.Errorf("minute %d out of range", t.Minute)
	}
	if t.Second > 60 {
		return fmt.Errorf("second %d out of range", t.Second)
	}
	if t.Nanos >= 1_000_000_000 {
		return fmt.Errorf("nanosecond %d out of range", t.Nanos)
	}
	return nil
}

func validateOffset(o Offset) error {
	if o.Kind != OffsetHM {
		return nil
	}
	if o.Hours > 23 {
		return fmt.Errorf("offset hour %d out of range", o.Hours)
	}
	if o.Minutes > 59 {
		return fmt.Errorf("offset minute %d out of range", o.Minutes)
	}
	return nil
}

// String renders the datetime in its canonical TOML textual form.
func (dt DateTime) String() string {
	switch dt.Kind {
	case KindLocalDate:
		return fmt.Sprintf("%04d-%02d-%02d", dt.Date.Year, dt.Date.Month, dt.Date.Day)
	case KindLocalTime:
		return formatTime(dt.Time)
	case KindLocalDateTime:
		return fmt.Sprintf("%04d-%02d-%02dT%s", dt.Date.Year, dt.Date.Month, dt.Date.Day, formatTime(dt.Time))
	default: // KindOffsetDateTime
		return fmt.Sprintf("%04d-%02d-%02dT%s%s", dt.Date.Year, dt.Date.Month, dt.Date.Day, formatTime(dt.Time), formatOffset(dt.Offset))
	}
}

func formatTime(t Time) string {
	if t.Nanos == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanos)
}

func formatOffset(o Offset) string {
	if o.Kind == OffsetZ {
		return "Z"
	}
	sign := "+"
	if o.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d", sign, o.Hours, o.Minutes)
}
