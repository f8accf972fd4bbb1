package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	repo "github.com/agroconnect/agroconnect-cli/internal/client/repositories/session"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/cart"
	"github.com/agroconnect/agroconnect-cli/internal/client/config"
	"github.com/agroconnect/agroconnect-cli/internal/client/notify"
	"github.com/agroconnect/agroconnect-cli/internal/client/routes"
	"github.com/agroconnect/agroconnect-cli/internal/client/services"
	"github.com/agroconnect/agroconnect-cli/internal/dbx"
	"github.com/agroconnect/agroconnect-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db            *sql.DB
	api           api.Client
	session       *services.Session
	cart          *cart.Cart
	notifications *services.NotificationCache
	checkout      *services.CheckoutService
	farm          *services.FarmService

	route  routes.Route
	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := repo.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	store := repo.NewSQLiteStore(db)
	notifier := notify.NewConsole(os.Stdout)
	apiClient := api.NewRESTClient(c.APIBaseURL, c.RequestTimeout, log)

	a := &App{
		config: c,
		log:    log,
		db:     db,
		api:    apiClient,
		route:  routes.RouteHome,
		reader: bufio.NewReader(os.Stdin),
	}

	a.session = services.NewSession(apiClient, store, a, notifier, log)
	a.cart = cart.New(store, notifier, log)
	a.notifications = services.NewNotificationCache(apiClient, c.NotificationPollInterval, log)
	a.checkout = services.NewCheckoutService(apiClient, a.cart, log)
	a.farm = services.NewFarmService(apiClient, log)

	// The unread poller follows login/logout, not any view lifecycle.
	a.session.Watch(a.notifications)

	return a, nil
}

// Navigate tracks the current route; the REPL has no views to swap, so a
// navigation only moves the prompt.
func (a *App) Navigate(to routes.Route) {
	a.route = to
}

// Run restores persisted state and enters the command loop. Returns when the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.session.Bootstrap(ctx)
	a.cart.Load(ctx)

	printlnFn("Bienvenue sur AgroConnect (tapez 'help' pour les commandes)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

// Close releases the local database. The notification poller is stopped by
// the same auth transition that a future login would restart it with, so only
// an explicit stop is needed here.
func (a *App) Close() {
	a.notifications.AuthChanged(false)
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "failed to close local database", "error", err)
	}
}

// ResetLocalData drops everything persisted locally, token and cart alike,
// in a single transaction, then realigns the in-memory state. An escape
// hatch for when the local database holds stale or corrupted entries.
func (a *App) ResetLocalData(ctx context.Context) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return repo.NewSQLiteStore(tx).Clear(ctx)
	})
	if err != nil {
		printlnFn("Impossible d'effacer les données locales.")
		return fmt.Errorf("reset local data: %w", err)
	}

	a.cart.Load(ctx)
	printlnFn("Données locales effacées.")
	if a.isLoggedIn() {
		a.session.Logout(ctx)
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.CurrentUser(); u != nil {
		s = fmt.Sprintf("%s:%s", u.Prenom, u.TypeUtilisateur)
		if n := a.notifications.UnreadCount(); n > 0 {
			s = fmt.Sprintf("%s \U0001F514%d", s, n)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return fmt.Sprintf("%s%s", s, a.route)
}

// allowed runs the role gate for the command's route. On a denial it issues
// the same redirect the views would and reports false; the REPL then skips
// the handler.
func (a *App) allowed(to routes.Route) bool {
	switch routes.Evaluate(a.session.State(), routes.Resolve(string(to)).Role) {
	case routes.OutcomeAllow:
		a.Navigate(to)
		return true
	case routes.OutcomeLoading:
		printlnFn("Chargement de la session...")
		return false
	case routes.OutcomeRedirectLogin:
		printlnFn("Veuillez vous connecter pour continuer.")
		a.Navigate(routes.RouteLogin)
		return false
	default:
		printlnFn("Page introuvable.")
		a.Navigate(routes.RouteNotFound)
		return false
	}
}

// fcfa renders an integer FCFA amount.
func fcfa(v int64) string {
	return fmt.Sprintf("%d FCFA", v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}
