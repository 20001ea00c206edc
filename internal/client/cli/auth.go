package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/devauth/internal/client/client"
	"github.com/dmitrijs2005/devauth/internal/client/models"
	"github.com/dmitrijs2005/devauth/internal/common"
)

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// reportError prints err for the user, listing field messages one per line.
func (a *App) reportError(action string, err error) {
	var fe common.FieldErrors
	if errors.As(err, &fe) {
		keys := make([]string, 0, len(fe))
		for k := range fe {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		a.printf("%s failed:\n", action)
		for _, k := range keys {
			a.printf("  %s\n", fe[k])
		}
		return
	}

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.printf("%s failed: session expired or invalid, please login again\n", action)
	case errors.Is(err, client.ErrNotLoggedIn):
		a.printf("%s failed: please login first\n", action)
	case errors.Is(err, client.ErrUnavailable):
		a.printf("%s failed: server unavailable\n", action)
	default:
		a.printf("%s failed: %v\n", action, err)
	}
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	password2, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	user, err := a.client.Register(ctx, models.RegisterRequest{
		Name: name, Email: email, Password: password, Password2: password2,
	})
	if err != nil {
		a.reportError("Registration", err)
		return err
	}

	a.printf("Registered %s <%s>, id %s\n", user.Name, user.Email, user.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		a.reportError("Login", err)
		return err
	}

	a.email = email
	a.printf("Logged in as %s\n", email)
	return nil
}

func (a *App) Current(ctx context.Context) error {
	id, err := a.client.Current(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.client.Logout()
		}
		a.reportError("Current user", err)
		return err
	}

	a.printf("id:     %s\nname:   %s\navatar: %s\n", id.ID, id.Name, id.Avatar)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.email = ""
	a.printf("Logged out\n")
	return nil
}
