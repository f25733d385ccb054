package groupclass

import (
	"encoding/json"
	"time"

	"fitclub/internal/schedule"
)

const DefaultName = "Group Class"

// Class is a booked group class: one room and one trainer for an interval
// on a calendar date.
type Class struct {
	ID        int            `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	RoomID    int            `db:"room_id" json:"room_id"`
	TrainerID int            `db:"trainer_id" json:"trainer_id"`
	Date      time.Time      `db:"class_date" json:"date"`
	Start     schedule.Clock `db:"start_minute" json:"start_time"`
	End       schedule.Clock `db:"end_minute" json:"end_time"`
	Capacity  int            `db:"capacity" json:"capacity"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

func (c Class) Interval() schedule.Interval {
	return schedule.Interval{Start: c.Start, End: c.End}
}

type classJSON struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	RoomID    int            `json:"room_id"`
	TrainerID int            `json:"trainer_id"`
	Date      string         `json:"date"`
	Start     schedule.Clock `json:"start_time"`
	End       schedule.Clock `json:"end_time"`
	Capacity  int            `json:"capacity"`
	CreatedAt time.Time      `json:"created_at"`
}

func (c Class) toJSON() classJSON {
	return classJSON{
		ID:        c.ID,
		Name:      c.Name,
		RoomID:    c.RoomID,
		TrainerID: c.TrainerID,
		Date:      c.Date.Format(schedule.DateLayout),
		Start:     c.Start,
		End:       c.End,
		Capacity:  c.Capacity,
		CreatedAt: c.CreatedAt,
	}
}

func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toJSON())
}

// UpcomingClass is a class together with its current occupancy.
type UpcomingClass struct {
	Class
	Registered int `db:"registered" json:"registered"`
	SpotsLeft  int `db:"-" json:"spots_left"`
}

func (u UpcomingClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		classJSON
		Registered int `json:"registered"`
		SpotsLeft  int `json:"spots_left"`
	}{u.Class.toJSON(), u.Registered, u.SpotsLeft})
}

// BookingRequest is a proposed class. Date is a calendar day; only its
// year, month and day are used.
type BookingRequest struct {
	Name      string
	RoomID    int
	TrainerID int
	Date      time.Time
	Interval  schedule.Interval
	Capacity  int
}
