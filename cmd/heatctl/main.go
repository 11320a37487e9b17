// Command heatctl logs in to a HeatWatch API and inspects the session.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"heatwatch/internal/domain"
	"heatwatch/internal/platform"
	"heatwatch/internal/session"
)

const usage = `Usage: heatctl <command>

  login EMAIL     log in (password read from HEATCTL_PASSWORD or stdin)
  logout          forget the stored token
  whoami          show the logged-in user
  nav [MODE]      list the dashboard entries visible to the current role
                  (MODE: standalone-app, mobile-browser, desktop-browser)

Environment:
  HEATCTL_API_URL  API base URL (default http://localhost:8000)`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "heatctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	baseURL := os.Getenv("HEATCTL_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	store, err := tokenStore()
	if err != nil {
		return err
	}
	s, err := session.New(baseURL, session.WithStore(store))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "login":
		if len(args) < 2 {
			return errors.New("login requires an email")
		}
		password, err := readPassword()
		if err != nil {
			return err
		}
		user, err := s.Login(ctx, args[1], password)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", user.FullName(), roleLabel(s.CurrentRole()))

	case "logout":
		return s.Logout()

	case "whoami":
		user, err := s.Me(ctx)
		if errors.Is(err, session.ErrNotLoggedIn) {
			fmt.Println("not logged in")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\nrole: %s\n", user.FullName(), user.Email, roleLabel(user.Role))

	case "nav":
		mode := platform.ModeDesktopBrowser
		if len(args) > 1 {
			mode = platform.ParseExecutionMode(args[1])
		}
		for _, e := range platform.ComputeVisibleNav(mode, s.CurrentRole(), platform.DefaultCatalog()) {
			fmt.Printf("%-18s %s\n", e.Label, e.Path)
		}

	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[0], usage)
	}
	return nil
}

func tokenStore() (session.FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return session.FileStore{}, fmt.Errorf("locating config dir: %w", err)
	}
	return session.FileStore{Path: filepath.Join(dir, "heatwatch", "token")}, nil
}

func readPassword() (string, error) {
	if p := os.Getenv("HEATCTL_PASSWORD"); p != "" {
		return p, nil
	}
	fmt.Fprint(os.Stderr, "password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func roleLabel(r domain.UserRole) string {
	if label, ok := domain.RoleLabels[r]; ok {
		return label
	}
	return "anonyme"
}
