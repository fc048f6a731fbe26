package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
)

func (a *app) cmdDoctors(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		return a.doctorsList(ctx)
	case "show":
		if len(args) != 1 {
			return fmt.Errorf("doctors show: expected a doctor id")
		}
		return a.doctorsShow(ctx, args[0])
	case "add":
		return a.doctorsAdd(ctx, args)
	case "rm":
		if len(args) != 1 {
			return fmt.Errorf("doctors rm: expected a doctor id")
		}
		return a.doctorsRemove(ctx, args[0])
	default:
		return fmt.Errorf("doctors: unknown subcommand %q (want list, show, add or rm)", sub)
	}
}

func (a *app) doctorsList(ctx context.Context) error {
	doctors, err := a.client.Doctors(ctx)
	if err != nil {
		return fmt.Errorf("list doctors: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSPECIALTY")
	for _, doc := range doctors {
		fmt.Fprintf(w, "%s\t%s\t%s\n", doc.ID, doc.Name, doc.Specialty)
	}
	return w.Flush()
}

func (a *app) doctorsShow(ctx context.Context, id string) error {
	doc, err := a.client.Doctor(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch doctor: %w", err)
	}

	fmt.Printf("Name:      %s\n", doc.Name)
	fmt.Printf("Specialty: %s\n", doc.Specialty)
	if doc.Experience != nil {
		fmt.Printf("Experience: %d years\n", *doc.Experience)
	}
	if doc.Price != nil {
		fmt.Printf("Price:     %.2f\n", *doc.Price)
	}
	if doc.Biography != nil {
		fmt.Printf("\n%s\n", *doc.Biography)
	}
	return nil
}

func (a *app) doctorsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("doctors add", flag.ContinueOnError)
	name := fs.String("name", "", "doctor name")
	specialty := fs.String("specialty", "", "medical specialty")
	email := fs.String("email", "", "contact email")
	experience := fs.Int("experience", 0, "years of experience")
	price := fs.Float64("price", 0, "consultation price")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *specialty == "" {
		return fmt.Errorf("doctors add: -name and -specialty are required")
	}

	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if !a.session.Snapshot().Role().IsAdmin() {
		return fmt.Errorf("doctors add: requires the ADMIN role")
	}

	doctor := apiclient.Doctor{Name: *name, Specialty: *specialty}
	if *email != "" {
		doctor.ContactEmail = email
	}
	if *experience > 0 {
		doctor.Experience = experience
	}
	if *price > 0 {
		doctor.Price = price
	}

	created, err := a.client.CreateDoctor(ctx, doctor)
	if err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}

	fmt.Printf("Created doctor %s (%s)\n", created.Name, created.ID)
	return nil
}

func (a *app) doctorsRemove(ctx context.Context, id string) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if !a.session.Snapshot().Role().IsAdmin() {
		return fmt.Errorf("doctors rm: requires the ADMIN role")
	}

	if err := a.client.DeleteDoctor(ctx, id); err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}

	fmt.Printf("Deleted doctor %s\n", id)
	return nil
}
