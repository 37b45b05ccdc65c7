package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
)

func cmdLogin(a *app, ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bloodbank login <email>")
	}
	password, err := a.readLine("Password: ")
	if err != nil {
		return err
	}
	sess, err := a.sessions.Login(ctx, args[0], password)
	if err != nil {
		return fail("sign in", err)
	}
	a.printf("Signed in as %s (%s)\n", sess.Email, sess.Role)
	return nil
}

func cmdSignup(a *app, ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bloodbank signup <email>")
	}
	password, err := a.readLine("Password: ")
	if err != nil {
		return err
	}
	sess, err := a.sessions.Signup(ctx, args[0], password)
	if err != nil {
		return fail("create account", err)
	}
	a.printf("Account created. Signed in as %s\n", sess.Email)
	return nil
}

func cmdLogout(a *app, ctx context.Context, args []string) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.printf("Signed out.\n")
	return nil
}

func cmdWhoami(a *app, ctx context.Context, args []string) error {
	fs := a.newFlags("whoami")
	check := fs.Bool("check", false, "ask the backend whether the session is still valid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := a.sessions.Store()
	sess := store.Current()
	if sess == nil {
		a.printf("Not signed in.\n")
		return nil
	}

	a.printf("%s (%s), id %s\n", sess.Email, sess.Role, sess.ID)
	if sess.Token == "" {
		a.printf("Offline account, backend calls are not authenticated.\n")
		return nil
	}
	if left, ok := store.ExpiresIn(); ok {
		now := a.clock.Now()
		a.printf("Token expires %s\n", humanize.RelTime(now.Add(left), now, "ago", "from now"))
	}

	if *check {
		valid, err := a.client.ValidateSession(ctx)
		if err != nil {
			return fail("validate session", err)
		}
		a.printf("Backend accepts session: %t\n", valid)
	}
	return nil
}

func cmdPassword(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	current, err := a.readLine("Current password: ")
	if err != nil {
		return err
	}
	next, err := a.readLine("New password: ")
	if err != nil {
		return err
	}
	if err := a.client.ChangePassword(ctx, current, next); err != nil {
		return fail("change password", err)
	}
	a.printf("Password changed.\n")
	return nil
}
