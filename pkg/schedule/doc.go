// Package schedule computes appointment slot availability for the clinic's
// booking flow.
//
// Clinics book in fixed half-hour slots between 09:00 and 18:00 with a lunch
// break at 13:00. Availability is a pure computation over the appointment
// list the API already returns: a slot is occupied when a non-cancelled
// appointment for the same doctor falls inside it.
//
// # Usage
//
//	appts, err := client.Appointments(ctx)
//	if err != nil {
//		return err
//	}
//	free := schedule.Available(schedule.DefaultSlots(), appts, doctorID, day, loc)
package schedule
