package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDateRejectsFeb29OnNonLeapYear(t *testing.T) {
	err := validateDate(Date{Year: 2023, Month: 2, Day: 29})
	require.Error(t, err)
}

func TestValidateDateAcceptsFeb29OnLeapYear(t *testing.T) {
	err := validateDate(Date{Year: 2024, Month: 2, Day: 29})
	require.NoError(t, err)
}

func TestValidateDateRejectsMonthThirteen(t *testing.T) {
	err := validateDate(Date{Year: 2024, Month: 13, Day: 1})
	require.Error(t, err)
}

func TestValidateTimeRejectsHour24(t *testing.T) {
	err := validateTime(Time{Hour: 24})
	require.Error(t, err)
}

func TestValidateOffsetRejectsMinute60(t *testing.T) {
	err := validateOffset(Offset{Kind: OffsetHM, Minutes: 60})
	require.Error(t, err)
}

func TestDateTimeStringOffsetForm(t *testing.T) {
	dt := DateTime{
		Kind:   KindOffsetDateTime,
		Date:   Date{Year: 2024, Month: 3, Day: 14},
		Time:   Time{Hour: 9, Minute: 30, Second: 5},
		Offset: Offset{Kind: OffsetHM, Negative: true, Hours: 5, Minutes: 0},
	}
	require.Equal(t, "2024-03-14T09:30:05-05:00", dt.String())
}

func TestDateTimeStringLocalDate(t *testing.T) {
	dt := DateTime{Kind: KindLocalDate, Date: Date{Year: 1999, Month: 12, Day: 31}}
	require.Equal(t, "1999-12-31", dt.String())
}

func TestIsLeapYear(t *testing.T) {
	require.True(t, isLeapYear(2000))
	require.False(t, isLeapYear(1900))
	require.True(t, isLeapYear(2024))
	require.False(t, isLeapYear(2023))
}
