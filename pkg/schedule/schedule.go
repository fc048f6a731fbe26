package schedule

import (
	"fmt"
	"time"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
)

// Slot is a bookable time of day in "HH:MM" form.
type Slot string

// Hour and Minute parse the slot's components. A Slot produced by
// DefaultSlots always parses; hand-built slots are the caller's problem.
func (s Slot) Hour() int {
	var h, m int
	fmt.Sscanf(string(s), "%d:%d", &h, &m)
	return h
}

func (s Slot) Minute() int {
	var h, m int
	fmt.Sscanf(string(s), "%d:%d", &h, &m)
	return m
}

// DefaultSlots returns the clinic's bookable half-hour slots: 09:00 through
// 18:00, with the 13:00 and 13:30 lunch slots removed.
func DefaultSlots() []Slot {
	slots := make([]Slot, 0, 17)
	for hour := 9; hour <= 18; hour++ {
		for _, minute := range []int{0, 30} {
			if hour == 13 {
				continue
			}
			if hour == 18 && minute == 30 {
				break
			}
			slots = append(slots, Slot(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}
	return slots
}

// At anchors the slot to a calendar day in loc, yielding the instant a
// booking for that slot carries in its appointmentDate field.
func (s Slot) At(day time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(day.Year(), day.Month(), day.Day(), s.Hour(), s.Minute(), 0, 0, loc)
}

// Occupied reports whether the slot on day is taken for the doctor. Only
// appointments for the same doctor count, and cancelled appointments free
// their slot.
func Occupied(slot Slot, appts []apiclient.Appointment, doctorID int64, day time.Time, loc *time.Location) bool {
	start := slot.At(day, loc)
	end := start.Add(30 * time.Minute)

	for _, appt := range appts {
		if appt.DoctorID != doctorID {
			continue
		}
		if appt.Status == apiclient.AppointmentCancelled {
			continue
		}
		at := appt.AppointmentDate
		if !at.Before(start) && at.Before(end) {
			return true
		}
	}
	return false
}

// Available filters slots down to those still free for the doctor on day.
func Available(slots []Slot, appts []apiclient.Appointment, doctorID int64, day time.Time, loc *time.Location) []Slot {
	free := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if !Occupied(slot, appts, doctorID, day, loc) {
			free = append(free, slot)
		}
	}
	return free
}
