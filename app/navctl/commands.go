package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/talentnavigator/talentnavigator/internal/authstate"
	"github.com/talentnavigator/talentnavigator/internal/identity"
	"github.com/talentnavigator/talentnavigator/internal/models"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				b, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return err
				}
				password = string(b)
			}

			return a.session(cmd.Context(), func(ctx context.Context) error {
				res := a.gateway.Login(ctx, email, password)
				if !res.Success {
					if errors.Is(res.Err, identity.ErrInvalidCredentials) {
						return errors.New("invalid email or password")
					}
					return res.Err
				}
				fmt.Printf("signed in as %s\n", res.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd.Context(), func(ctx context.Context) error {
				a.gateway.Logout(ctx)
				fmt.Println("signed out")
				return nil
			})
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd.Context(), func(ctx context.Context) error {
				snap := a.store.Snapshot()
				if snap.Error != "" {
					return errors.New(snap.Error)
				}
				if !snap.IsAuthenticated {
					fmt.Println("not signed in")
					return nil
				}
				p := snap.Profile
				fmt.Printf("%s <%s>\nrole: %s\n", p.Username, p.Email, p.Role)
				return nil
			})
		},
	}
}

// viewCmd builds a read-only view gated the way the web app gates its routes:
// the guard decides between login, unauthorized, and render before any data
// is fetched.
func (a *app) viewCmd(name, short, path string, required ...models.UserRole) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session(cmd.Context(), func(ctx context.Context) error {
				switch authstate.Evaluate(a.store.Snapshot(), required...) {
				case authstate.RedirectLogin:
					return errors.New("not signed in, run: navctl login")
				case authstate.RedirectUnauthorized:
					return fmt.Errorf("your role may not view %s", name)
				case authstate.Render:
				default:
					return errors.New("session is still loading, try again")
				}

				body, err := a.client.get(ctx, path)
				if err != nil {
					return err
				}
				fmt.Println(string(body))
				return nil
			})
		},
	}
}
