package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mediflow/mediflow-go/pkg/locale"
)

func (a *app) cmdLocale(ctx context.Context, args []string) error {
	a.session.Initialize(ctx)

	if len(args) == 0 {
		fmt.Printf("%s (supported: %s)\n", a.session.Locale(), strings.Join(locale.Supported, ", "))
		return nil
	}

	code := locale.Normalize(args[0])
	if !locale.Recognized(args[0]) {
		fmt.Printf("%q is not supported; using %s\n", args[0], code)
	}

	a.session.SetLocale(code)
	fmt.Printf("Locale set to %s\n", a.session.Locale())
	return nil
}
