package availability

import (
	"encoding/json"
	"time"

	"fitclub/internal/schedule"
)

// Window is a weekly recurring period in which a trainer can teach.
type Window struct {
	ID        int            `db:"id" json:"id"`
	TrainerID int            `db:"trainer_id" json:"trainer_id"`
	DayOfWeek time.Weekday   `db:"day_of_week" json:"day_of_week"`
	Start     schedule.Clock `db:"start_minute" json:"start_time"`
	End       schedule.Clock `db:"end_minute" json:"end_time"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

func (w Window) Interval() schedule.Interval {
	return schedule.Interval{Start: w.Start, End: w.End}
}

func (w Window) MarshalJSON() ([]byte, error) {
	type plain Window
	return json.Marshal(struct {
		plain
		Day string `json:"day"`
	}{plain: plain(w), Day: w.DayOfWeek.String()})
}
