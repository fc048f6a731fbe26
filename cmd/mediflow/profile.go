package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
)

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "show":
		return a.profileShow(ctx)
	case "update":
		return a.profileUpdate(ctx, args)
	case "password":
		return a.profilePassword(ctx, args)
	default:
		return fmt.Errorf("profile: unknown subcommand %q (want show, update or password)", sub)
	}
}

func (a *app) profileShow(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if err := a.session.RefreshUser(ctx); err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}

	user := a.session.User()
	if user == nil {
		return fmt.Errorf("session expired; run: mediflow login")
	}
	fmt.Printf("Name:  %s\n", user.FullName())
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Role:  %s\n", user.Role)
	return nil
}

func (a *app) profileUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	firstName := fs.String("first-name", "", "new first name")
	lastName := fs.String("last-name", "", "new last name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *firstName == "" && *lastName == "" {
		return fmt.Errorf("profile update: nothing to change")
	}

	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	current := a.session.User()
	if current == nil {
		return fmt.Errorf("session expired; run: mediflow login")
	}
	update := apiclient.ProfileUpdate{
		FirstName: current.FirstName,
		LastName:  current.LastName,
	}
	if *firstName != "" {
		update.FirstName = *firstName
	}
	if *lastName != "" {
		update.LastName = *lastName
	}

	user, err := a.client.UpdateProfile(ctx, update)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	fmt.Printf("Profile updated: %s\n", user.FullName())
	return a.session.RefreshUser(ctx)
}

func (a *app) profilePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile password", flag.ContinueOnError)
	current := fs.String("current", "", "current password (prompted when omitted)")
	next := fs.String("new", "", "new password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	currentPass, err := resolvePassword(*current)
	if err != nil {
		return err
	}
	newPass, err := resolvePassword(*next)
	if err != nil {
		return err
	}

	if err := a.client.ChangePassword(ctx, apiclient.PasswordChange{
		CurrentPassword: currentPass,
		NewPassword:     newPass,
	}); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	fmt.Println("Password changed.")
	return nil
}
