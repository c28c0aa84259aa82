package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TripStatusPlanning  = "planning"
	TripStatusActive    = "active"
	TripStatusCompleted = "completed"
)

type Trip struct {
	BaseModel
	Name        string `gorm:"size:150;not null"`
	Description string `gorm:"type:text"`
	DateStart   time.Time
	DateEnd     time.Time
	JoinCode    string          `gorm:"uniqueIndex"`
	Cost        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Image       []byte          `gorm:"type:bytea"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid"`
	AdminIDs    UUIDList        `gorm:"type:jsonb"`
}

// TripMember is one membership row of the trip/user many-to-many relation.
// The composite unique index is what makes concurrent duplicate joins fail
// at the store instead of racing.
type TripMember struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_members_trip_user"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_members_trip_user"`
}

// StatusOn derives the trip status for a given day. Never persisted; the end
// date itself still counts as active.
func (t *Trip) StatusOn(today time.Time) string {
	if t.DateStart.IsZero() || t.DateEnd.IsZero() {
		return TripStatusPlanning
	}
	day := dateOnly(today)
	if day.Before(dateOnly(t.DateStart)) {
		return TripStatusPlanning
	}
	if day.After(dateOnly(t.DateEnd)) {
		return TripStatusCompleted
	}
	return TripStatusActive
}

// DurationDays is the inclusive day span of the trip. ok is false when either
// date is missing.
func (t *Trip) DurationDays() (int64, bool) {
	if t.DateStart.IsZero() || t.DateEnd.IsZero() {
		return 0, false
	}
	days := int64(dateOnly(t.DateEnd).Sub(dateOnly(t.DateStart)).Hours()/24) + 1
	return days, true
}

func (t *Trip) IsAdmin(userID uuid.UUID) bool {
	for _, id := range t.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UUIDList stores a set of uuids as a jsonb column.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		l = UUIDList{}
	}
	return json.Marshal(l)
}

func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = UUIDList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for UUIDList")
	}
	return json.Unmarshal(raw, l)
}

func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Without returns a copy with id removed.
func (l UUIDList) Without(id uuid.UUID) UUIDList {
	out := make(UUIDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
