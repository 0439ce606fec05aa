package main

import (
	"context"
	"flag"
	"fmt"

	"library-catalog/pkg/client/session"
)

func runAuth(ctx context.Context, sess *session.Session, cmd string, args []string) error {
	switch cmd {
	case "register":
		fs := flag.NewFlagSet("register", flag.ContinueOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password (min 6 characters)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *name == "" || *email == "" || *password == "" {
			return fmt.Errorf("register requires -name, -email and -password")
		}
		if err := sess.Register(ctx, *name, *email, *password, *password); err != nil {
			return err
		}
		fmt.Printf("registered and logged in as %s\n", sess.User().Email)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ContinueOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *email == "" || *password == "" {
			return fmt.Errorf("login requires -email and -password")
		}
		if err := sess.Login(ctx, *email, *password); err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", sess.User().Email)
		return nil

	case "logout":
		if err := sess.Restore(ctx); err != nil {
			return err
		}
		if sess.State() != session.Authenticated {
			fmt.Println("not logged in")
			return nil
		}
		sess.Logout(ctx)
		fmt.Println("logged out")
		return nil

	case "me":
		if err := sess.Restore(ctx); err != nil {
			return err
		}
		if sess.State() != session.Authenticated {
			return fmt.Errorf("not logged in")
		}
		u := sess.User()
		fmt.Printf("#%d  %s <%s>\n", u.ID, u.Name, u.Email)
		return nil
	}
	return fmt.Errorf("unknown auth command %q", cmd)
}
