// navctl is a terminal client for the TalentNavigator API. It keeps a signed
// session in the home directory and gates each view through the same auth
// core the server-side tooling uses.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/talentnavigator/talentnavigator/internal/authstate"
	"github.com/talentnavigator/talentnavigator/internal/identity"
	"github.com/talentnavigator/talentnavigator/internal/models"
)

type app struct {
	provider *identity.RESTProvider
	store    *authstate.Store
	gateway  *authstate.Gateway
	client   *apiClient
	log      *logrus.Logger
}

func newApp() *app {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if os.Getenv("NAVCTL_DEBUG") == "" {
		log.SetLevel(logrus.ErrorLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	base := os.Getenv("TALENTNAV_API")
	if base == "" {
		base = "http://localhost:8080"
	}

	tokens := identity.NewFileTokenStore(tokenPath())
	provider := identity.NewRESTProvider(base, tokens)
	store := authstate.NewStore(provider, models.RoleFromEmail, log)
	gateway := authstate.NewGateway(provider, store, log)

	return &app{
		provider: provider,
		store:    store,
		gateway:  gateway,
		client:   newAPIClient(base, tokens),
		log:      log,
	}
}

func tokenPath() string {
	if p := os.Getenv("TALENTNAV_TOKEN_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".talentnavigator-token"
	}
	return filepath.Join(home, ".talentnavigator", "token")
}

// session boots the auth core for one command: start the event loop, run the
// initial session check, hand the hydrated snapshot to fn, then drain.
func (a *app) session(ctx context.Context, fn func(ctx context.Context) error) error {
	a.store.Run(ctx)
	a.store.Init(ctx)

	err := fn(ctx)

	a.provider.Close()
	a.store.Wait()
	return err
}

func main() {
	a := newApp()

	root := &cobra.Command{
		Use:           "navctl",
		Short:         "TalentNavigator command-line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.viewCmd("employees", "List employees", "/api/employees"),
		a.viewCmd("projects", "List projects", "/api/projects"),
		a.viewCmd("mentees", "List your mentees", "/api/mentees"),
		a.viewCmd("matrices", "List ILBAM matrices", "/api/ilbam",
			models.RoleAdmin, models.RoleManager),
		a.viewCmd("recommendations", "List team recommendations", "/api/recommendations",
			models.RoleAdmin, models.RoleMentor),
		a.viewCmd("users", "List accounts", "/api/users", models.RoleAdmin),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "navctl:", err)
		os.Exit(1)
	}
}
