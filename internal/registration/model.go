package registration

import (
	"encoding/json"
	"time"

	"fitclub/internal/schedule"
)

type Registration struct {
	ID        int       `db:"id" json:"id"`
	ClassID   int       `db:"class_id" json:"class_id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Enrollment is a member's registration joined with the class it is for.
type Enrollment struct {
	RegistrationID int            `db:"registration_id"`
	ClassID        int            `db:"class_id"`
	ClassName      string         `db:"class_name"`
	RoomID         int            `db:"room_id"`
	TrainerID      int            `db:"trainer_id"`
	Date           time.Time      `db:"class_date"`
	Start          schedule.Clock `db:"start_minute"`
	End            schedule.Clock `db:"end_minute"`
	RegisteredAt   time.Time      `db:"registered_at"`
}

func (e Enrollment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RegistrationID int            `json:"registration_id"`
		ClassID        int            `json:"class_id"`
		ClassName      string         `json:"class_name"`
		RoomID         int            `json:"room_id"`
		TrainerID      int            `json:"trainer_id"`
		Date           string         `json:"date"`
		Start          schedule.Clock `json:"start_time"`
		End            schedule.Clock `json:"end_time"`
		RegisteredAt   time.Time      `json:"registered_at"`
	}{
		RegistrationID: e.RegistrationID,
		ClassID:        e.ClassID,
		ClassName:      e.ClassName,
		RoomID:         e.RoomID,
		TrainerID:      e.TrainerID,
		Date:           e.Date.Format(schedule.DateLayout),
		Start:          e.Start,
		End:            e.End,
		RegisteredAt:   e.RegisteredAt,
	})
}
