// Command catalogctl is a terminal client for the library catalog API.
//
// Usage:
//
//	catalogctl [-server URL] <command> [flags]
//
// Commands: register, login, logout, me,
// authors|publishers|books list|get|create|update|delete.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"library-catalog/pkg/client"
	"library-catalog/pkg/client/session"
	"library-catalog/pkg/logger"
)

func main() {
	logger.Init(os.Getenv("APP_ENV"))

	if err := run(os.Args[1:]); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintln(os.Stderr, "error:", apiErr.JoinedMessage())
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	server := os.Getenv("CATALOG_SERVER")
	if server == "" {
		server = "http://localhost:8080/api"
	}

	// A leading -server flag applies to every command.
	if len(args) >= 2 && args[0] == "-server" {
		server = args[1]
		args = args[2:]
	}
	if len(args) == 0 {
		usage()
		return errors.New("no command given")
	}

	tokenPath, err := session.DefaultTokenPath()
	if err != nil {
		return fmt.Errorf("resolve token path: %w", err)
	}

	c := client.New(server)
	sess := session.New(c, session.NewFileTokenStore(tokenPath))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register", "login", "logout", "me":
		return runAuth(ctx, sess, cmd, rest)
	case "authors", "publishers", "books":
		if err := sess.Restore(ctx); err != nil {
			return err
		}
		if sess.State() != session.Authenticated {
			return errors.New("not logged in; run: catalogctl login -email ... -password ...")
		}
		return runResource(ctx, c, cmd, rest)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `catalogctl - library catalog client

  catalogctl [-server URL] register -name N -email E -password P
  catalogctl [-server URL] login -email E -password P
  catalogctl [-server URL] logout
  catalogctl [-server URL] me

  catalogctl [-server URL] authors    list|get|create|update|delete [flags]
  catalogctl [-server URL] publishers list|get|create|update|delete [flags]
  catalogctl [-server URL] books      list|get|create|update|delete [flags]

The server URL defaults to $CATALOG_SERVER, then http://localhost:8080/api.`)
}
