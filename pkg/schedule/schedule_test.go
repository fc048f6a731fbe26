package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/schedule"
)

func TestDefaultSlots(t *testing.T) {
	slots := schedule.DefaultSlots()

	require.Len(t, slots, 17)
	assert.Equal(t, schedule.Slot("09:00"), slots[0])
	assert.Equal(t, schedule.Slot("18:00"), slots[len(slots)-1])
	assert.NotContains(t, slots, schedule.Slot("13:00"))
	assert.NotContains(t, slots, schedule.Slot("13:30"))
	assert.Contains(t, slots, schedule.Slot("12:30"))
	assert.Contains(t, slots, schedule.Slot("14:00"))
}

func TestSlot_At(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	day := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	at := schedule.Slot("14:30").At(day, loc)

	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, loc, at.Location())
	assert.Equal(t, time.Date(2026, 4, 15, 14, 30, 0, 0, loc), at)
}

func TestOccupied(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 4, 15, 0, 0, 0, 0, loc)

	appt := func(doctorID int64, at time.Time, status apiclient.AppointmentStatus) apiclient.Appointment {
		return apiclient.Appointment{DoctorID: doctorID, AppointmentDate: at, Status: status}
	}

	taken := day.Add(10 * time.Hour) // 10:00

	t.Run("confirmed appointment occupies its slot", func(t *testing.T) {
		appts := []apiclient.Appointment{appt(7, taken, apiclient.AppointmentConfirmed)}
		assert.True(t, schedule.Occupied("10:00", appts, 7, day, loc))
	})

	t.Run("pending appointment occupies its slot", func(t *testing.T) {
		appts := []apiclient.Appointment{appt(7, taken, apiclient.AppointmentPending)}
		assert.True(t, schedule.Occupied("10:00", appts, 7, day, loc))
	})

	t.Run("cancelled appointment frees its slot", func(t *testing.T) {
		appts := []apiclient.Appointment{appt(7, taken, apiclient.AppointmentCancelled)}
		assert.False(t, schedule.Occupied("10:00", appts, 7, day, loc))
	})

	t.Run("another doctor's appointment does not count", func(t *testing.T) {
		appts := []apiclient.Appointment{appt(9, taken, apiclient.AppointmentConfirmed)}
		assert.False(t, schedule.Occupied("10:00", appts, 7, day, loc))
	})

	t.Run("appointment inside the half hour occupies it", func(t *testing.T) {
		appts := []apiclient.Appointment{appt(7, taken.Add(15*time.Minute), apiclient.AppointmentConfirmed)}
		assert.True(t, schedule.Occupied("10:00", appts, 7, day, loc))
		assert.False(t, schedule.Occupied("10:30", appts, 7, day, loc))
	})

	t.Run("adjacent slot stays free", func(t *testing.T) {
		appts := []apiclient.Appointment{appt(7, taken, apiclient.AppointmentConfirmed)}
		assert.False(t, schedule.Occupied("09:30", appts, 7, day, loc))
		assert.False(t, schedule.Occupied("10:30", appts, 7, day, loc))
	})

	t.Run("different day stays free", func(t *testing.T) {
		appts := []apiclient.Appointment{appt(7, taken, apiclient.AppointmentConfirmed)}
		assert.False(t, schedule.Occupied("10:00", appts, 7, day.AddDate(0, 0, 1), loc))
	})
}

func TestAvailable(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 4, 15, 0, 0, 0, 0, loc)

	appts := []apiclient.Appointment{
		{DoctorID: 7, AppointmentDate: day.Add(9 * time.Hour), Status: apiclient.AppointmentConfirmed},
		{DoctorID: 7, AppointmentDate: day.Add(14 * time.Hour), Status: apiclient.AppointmentPending},
		{DoctorID: 7, AppointmentDate: day.Add(16 * time.Hour), Status: apiclient.AppointmentCancelled},
	}

	free := schedule.Available(schedule.DefaultSlots(), appts, 7, day, loc)

	assert.Len(t, free, 15)
	assert.NotContains(t, free, schedule.Slot("09:00"))
	assert.NotContains(t, free, schedule.Slot("14:00"))
	assert.Contains(t, free, schedule.Slot("16:00"))
}
