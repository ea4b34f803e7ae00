// Package cli is the terminal front end of the investor portal: a REPL
// whose commands play the role of the portal's views. Every view declares
// an access requirement and is gated by the route guard before it runs.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/enokjanuario/primeholding/internal/client/api"
	"github.com/enokjanuario/primeholding/internal/client/config"
	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/client/session"
	"github.com/enokjanuario/primeholding/internal/client/token"
	"github.com/enokjanuario/primeholding/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// App wires the session context, the API client and the terminal together.
type App struct {
	config  *config.Config
	api     *api.Client
	svc     session.Service
	session *session.Context
	clock   clockwork.Clock
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	tokens, err := token.NewFileStore(c.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("token store: %w", err)
	}

	apiClient := api.New(c.APIBaseURL, tokens,
		api.WithHTTPClient(&http.Client{Timeout: c.HTTPTimeout}),
		api.WithLogger(log),
	)

	svc := session.NewService(apiClient, tokens, log)
	sess := session.NewContext(svc, session.WithContextLogger(log))

	return &App{
		config:  c,
		api:     apiClient,
		svc:     svc,
		session: sess,
		clock:   clockwork.NewRealClock(),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run performs the one-time session check and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Initialize(ctx)

	snap := a.session.Snapshot()
	if snap.Authenticated() {
		fmt.Fprintf(a.out, "Sessão restaurada: %s (%s)\n", snap.User.Nome, snap.User.Role)
	} else {
		fmt.Fprintln(a.out, "Bem-vindo ao portal Prime Holding. Digite 'login' para entrar.")
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	switch {
	case snap.Loading():
		return "..."
	case snap.Authenticated():
		return fmt.Sprintf("%s [%s]", snap.User.Email, snap.User.Role)
	default:
		return "anônimo"
	}
}

func (a *App) isLoggedIn() bool { return a.session.Snapshot().Authenticated() }

func (a *App) isAdmin() bool {
	snap := a.session.Snapshot()
	return snap.Authenticated() && snap.User.Role == models.RoleElevated
}

// visit runs a view through the route guard. Redirect outcomes are honored
// by rendering the target view instead, so repeated evaluation with an
// unchanged snapshot always lands on the same screen.
func (a *App) visit(ctx context.Context, req guard.Requirement, view func(context.Context) error) error {
	outcome := guard.Decide(a.session.Snapshot(), req)
	switch outcome.Action {
	case guard.ShowLoading:
		fmt.Fprintln(a.out, "Verificando sessão, aguarde...")
		return nil
	case guard.Redirect:
		return a.redirect(ctx, outcome.Target)
	default:
		return view(ctx)
	}
}

func (a *App) redirect(ctx context.Context, target guard.Route) error {
	switch target {
	case guard.RouteLogin:
		fmt.Fprintln(a.out, "Acesso restrito. Faça login para continuar.")
		return a.Login(ctx)
	case guard.RouteAdmin:
		fmt.Fprintln(a.out, "Redirecionando para o painel administrativo.")
		return a.AdminDashboard(ctx)
	default:
		fmt.Fprintln(a.out, "Redirecionando para o seu painel.")
		return a.Dashboard(ctx)
	}
}

// currentUser returns the logged-in profile. The guard guarantees it is
// non-nil inside authenticated views.
func (a *App) currentUser() *models.Investidor {
	return a.session.Snapshot().User
}
