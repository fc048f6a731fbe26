package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/schedule"
)

func (a *app) cmdAppointments(ctx context.Context, args []string) error {
	sub := "mine"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "mine":
		return a.appointmentsMine(ctx)
	case "all":
		return a.appointmentsAll(ctx)
	case "cancel":
		if len(args) != 1 {
			return fmt.Errorf("appointments cancel: expected an appointment id")
		}
		return a.appointmentsCancel(ctx, args[0])
	case "status":
		if len(args) != 2 {
			return fmt.Errorf("appointments status: expected an appointment id and a status")
		}
		return a.appointmentsStatus(ctx, args[0], args[1])
	case "slots":
		return a.appointmentsSlots(ctx, args)
	default:
		return fmt.Errorf("appointments: unknown subcommand %q (want mine, all, cancel, status or slots)", sub)
	}
}

func (a *app) appointmentsMine(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	appts, err := a.client.MyAppointments(ctx)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}
	printAppointments(appts)
	return nil
}

func (a *app) appointmentsAll(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if !a.session.Snapshot().Role().IsAdmin() {
		return fmt.Errorf("appointments all: requires the ADMIN role")
	}
	appts, err := a.client.Appointments(ctx)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}
	printAppointments(appts)
	return nil
}

func (a *app) appointmentsCancel(ctx context.Context, id string) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if err := a.client.CancelAppointment(ctx, id); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	fmt.Printf("Cancelled appointment %s\n", id)
	return nil
}

func (a *app) appointmentsStatus(ctx context.Context, id, status string) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if !a.session.Snapshot().Role().IsAdmin() {
		return fmt.Errorf("appointments status: requires the ADMIN role")
	}

	next := apiclient.AppointmentStatus(strings.ToUpper(status))
	switch next {
	case apiclient.AppointmentPending, apiclient.AppointmentConfirmed,
		apiclient.AppointmentCompleted, apiclient.AppointmentCancelled:
	default:
		return fmt.Errorf("appointments status: unknown status %q", status)
	}

	appt, err := a.client.UpdateAppointmentStatus(ctx, id, next)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	fmt.Printf("Appointment %s is now %s\n", appt.ID, appt.Status)
	return nil
}

func (a *app) appointmentsSlots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("appointments slots", flag.ContinueOnError)
	doctorID := fs.Int64("doctor", 0, "doctor id")
	date := fs.String("date", "", "day to check, YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *doctorID == 0 {
		return fmt.Errorf("appointments slots: -doctor is required")
	}

	day, err := parseDay(*date)
	if err != nil {
		return err
	}

	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	appts, err := a.client.Appointments(ctx)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}

	free := schedule.Available(schedule.DefaultSlots(), appts, *doctorID, day, time.Local)
	if len(free) == 0 {
		fmt.Println("No free slots.")
		return nil
	}
	for _, slot := range free {
		fmt.Println(slot)
	}
	return nil
}

func (a *app) cmdBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	doctorID := fs.Int64("doctor", 0, "doctor id")
	date := fs.String("date", "", "day to book, YYYY-MM-DD")
	at := fs.String("time", "", "slot to book, HH:MM")
	notes := fs.String("notes", "", "optional notes for the doctor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *doctorID == 0 || *date == "" || *at == "" {
		return fmt.Errorf("book: -doctor, -date and -time are required")
	}

	day, err := parseDay(*date)
	if err != nil {
		return err
	}
	slot := schedule.Slot(*at)
	if !slotOffered(slot) {
		return fmt.Errorf("book: %s is not a bookable slot", slot)
	}

	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	appt, err := a.client.BookAppointment(ctx, apiclient.BookingRequest{
		DoctorID:        *doctorID,
		AppointmentDate: slot.At(day, time.Local),
		Notes:           *notes,
	})
	if err != nil {
		return fmt.Errorf("book appointment: %w", err)
	}

	fmt.Printf("Booked appointment %s for %s\n", appt.ID, appt.AppointmentDate.Format("2006-01-02 15:04"))
	return nil
}

func slotOffered(slot schedule.Slot) bool {
	for _, offered := range schedule.DefaultSlots() {
		if slot == offered {
			return true
		}
	}
	return false
}

func parseDay(date string) (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return day, nil
}

func printAppointments(appts []apiclient.Appointment) {
	if len(appts) == 0 {
		fmt.Println("No appointments.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDOCTOR\tDATE\tSTATUS")
	for _, appt := range appts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			appt.ID,
			strconv.FormatInt(appt.DoctorID, 10),
			appt.AppointmentDate.Local().Format("2006-01-02 15:04"),
			appt.Status,
		)
	}
	w.Flush()
}
