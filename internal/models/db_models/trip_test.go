package db_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTripStatusBoundaries(t *testing.T) {
	trip := &Trip{
		DateStart: day(2026, time.March, 10),
		DateEnd:   day(2026, time.March, 15),
	}

	assert.Equal(t, TripStatusPlanning, trip.StatusOn(day(2026, time.March, 9)))
	assert.Equal(t, TripStatusActive, trip.StatusOn(day(2026, time.March, 10)))
	// The end date itself still counts as traveling.
	assert.Equal(t, TripStatusActive, trip.StatusOn(day(2026, time.March, 15)))
	assert.Equal(t, TripStatusCompleted, trip.StatusOn(day(2026, time.March, 16)))

	// The comparison is day-granular regardless of the hour.
	late := time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, TripStatusActive, trip.StatusOn(late))
}

func TestTripStatusWithoutDates(t *testing.T) {
	trip := &Trip{}
	assert.Equal(t, TripStatusPlanning, trip.StatusOn(day(2026, time.March, 10)))

	_, ok := trip.DurationDays()
	assert.False(t, ok)
}

func TestTripDurationInclusive(t *testing.T) {
	trip := &Trip{
		DateStart: day(2026, time.March, 10),
		DateEnd:   day(2026, time.March, 15),
	}
	days, ok := trip.DurationDays()
	assert.True(t, ok)
	assert.Equal(t, int64(6), days)

	sameDay := &Trip{DateStart: day(2026, time.March, 10), DateEnd: day(2026, time.March, 10)}
	days, ok = sameDay.DurationDays()
	assert.True(t, ok)
	assert.Equal(t, int64(1), days)
}

func TestUUIDListRoundTripAndOps(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	list := UUIDList{a, b}

	value, err := list.Value()
	assert.NoError(t, err)

	var scanned UUIDList
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)

	assert.True(t, scanned.Contains(a))
	assert.False(t, scanned.Contains(uuid.New()))

	without := scanned.Without(a)
	assert.Equal(t, UUIDList{b}, without)
	assert.True(t, scanned.Contains(a)) // original untouched
}

func TestTripIsAdmin(t *testing.T) {
	admin := uuid.New()
	trip := &Trip{AdminIDs: UUIDList{admin}}
	assert.True(t, trip.IsAdmin(admin))
	assert.False(t, trip.IsAdmin(uuid.New()))
}
