package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mediflow/mediflow-go/pkg/apiclient"
	"github.com/mediflow/mediflow-go/pkg/session"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("login: -email is required")
	}
	pass, err := resolvePassword(*password)
	if err != nil {
		return err
	}

	a.session.Initialize(ctx)
	user, err := a.session.Login(ctx, apiclient.Credentials{Email: *email, Password: pass})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", user.FullName(), user.Role)
	fmt.Printf("Landing: %s\n", a.policy.LandingFor(user.Role))
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *firstName == "" || *lastName == "" {
		return fmt.Errorf("register: -email, -first-name and -last-name are required")
	}
	pass, err := resolvePassword(*password)
	if err != nil {
		return err
	}

	a.session.Initialize(ctx)
	user, err := a.session.Register(ctx, apiclient.Registration{
		Email:     *email,
		Password:  pass,
		FirstName: *firstName,
		LastName:  *lastName,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Welcome, %s. You are logged in.\n", user.FullName())
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	a.session.Initialize(ctx)
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	status := a.session.Initialize(ctx)
	if status != session.StatusAuthenticated {
		fmt.Println("Not logged in.")
		return nil
	}

	user := a.session.User()
	fmt.Printf("Name:   %s\n", user.FullName())
	fmt.Printf("Email:  %s\n", user.Email)
	fmt.Printf("Role:   %s\n", user.Role)
	fmt.Printf("Locale: %s\n", a.session.Locale())
	return nil
}

// resolvePassword returns the flag value or prompts on the terminal without
// echoing. A non-terminal stdin falls back to a plain line read so the CLI
// stays scriptable.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
