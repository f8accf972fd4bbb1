package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	repo "github.com/agroconnect/agroconnect-cli/internal/client/repositories/session"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/cart"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/client/notify"
	"github.com/agroconnect/agroconnect-cli/internal/client/routes"
	"github.com/agroconnect/agroconnect-cli/internal/client/services"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

type stubAPI struct {
	api.Client
	user models.User
}

func (s *stubAPI) SetAuthToken(string) {}
func (s *stubAPI) ClearAuthToken()     {}

func (s *stubAPI) Login(ctx context.Context, telephone, motDePasse string) (*models.AuthResponse, error) {
	return &models.AuthResponse{User: s.user, Token: "tok"}, nil
}

func newTestApp(t *testing.T, role models.Role) *App {
	t.Helper()
	log := logging.NewDefault(io.Discard, 0)
	store := repo.NewMemoryStore()
	client := &stubAPI{user: models.User{Prenom: "Awa", TypeUtilisateur: role}}

	a := &App{log: log, api: client, route: routes.RouteHome}
	a.session = services.NewSession(client, store, a, &notify.Recorder{}, log)
	a.cart = cart.New(store, &notify.Recorder{}, log)
	a.notifications = services.NewNotificationCache(client, time.Minute, log)
	return a
}

func TestAllowed_BlocksWhileSessionLoading(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t, models.RoleAcheteur)

	require.False(t, a.allowed(routes.RouteCart))
	require.Equal(t, routes.RouteHome, a.route, "a loading gate must not redirect")
}

func TestAllowed_RedirectsAnonymousToLogin(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t, models.RoleAcheteur)
	a.session.Bootstrap(context.Background())

	require.False(t, a.allowed(routes.RouteCart))
	require.Equal(t, routes.RouteLogin, a.route)
}

func TestAllowed_RoleMismatchHidesRoute(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t, models.RoleAcheteur)
	ctx := context.Background()
	a.session.Bootstrap(ctx)
	require.NoError(t, a.session.Login(ctx, "770000000", "secret"))

	require.True(t, a.allowed(routes.RouteCart))
	require.Equal(t, routes.RouteCart, a.route)

	require.False(t, a.allowed(routes.RouteAgriculteur))
	require.Equal(t, routes.RouteNotFound, a.route)
}

func TestAllowed_ProfileAcceptsAnyRole(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t, models.RoleAgriculteur)
	ctx := context.Background()
	a.session.Bootstrap(ctx)
	require.NoError(t, a.session.Login(ctx, "770000000", "secret"))

	require.True(t, a.allowed(routes.RouteProfile))
}

func setupAppDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:cliapp?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestResetLocalData_WipesLocalState(t *testing.T) {
	silencePrintln(t)
	db := setupAppDB(t)
	store := repo.NewSQLiteStore(db)
	log := logging.NewDefault(io.Discard, 0)
	client := &stubAPI{user: models.User{Prenom: "Awa", TypeUtilisateur: models.RoleAcheteur}}

	a := &App{log: log, db: db, api: client, route: routes.RouteHome}
	a.session = services.NewSession(client, store, a, &notify.Recorder{}, log)
	a.cart = cart.New(store, &notify.Recorder{}, log)
	a.notifications = services.NewNotificationCache(client, time.Minute, log)

	ctx := context.Background()
	a.session.Bootstrap(ctx)
	require.NoError(t, a.session.Login(ctx, "770000000", "secret"))
	a.cart.AddItem(ctx, models.CartItem{OffreID: "o1", NomProduit: "Riz local", Quantite: 1, StockDisponible: 3})

	require.NoError(t, a.ResetLocalData(ctx))

	v, err := store.Get(ctx, repo.KeyToken)
	require.NoError(t, err)
	require.Nil(t, v, "the persisted token must be gone")
	v, err = store.Get(ctx, repo.KeyCart)
	require.NoError(t, err)
	require.Nil(t, v, "the persisted cart must be gone")

	require.Empty(t, a.cart.Items())
	require.False(t, a.session.IsAuthenticated())
	require.Equal(t, routes.RouteLogin, a.route)
}

func TestResetLocalData_LoggedOutKeepsSessionAnonymous(t *testing.T) {
	silencePrintln(t)
	db := setupAppDB(t)
	store := repo.NewSQLiteStore(db)
	log := logging.NewDefault(io.Discard, 0)
	client := &stubAPI{}

	a := &App{log: log, db: db, api: client, route: routes.RouteHome}
	a.session = services.NewSession(client, store, a, &notify.Recorder{}, log)
	a.cart = cart.New(store, &notify.Recorder{}, log)

	ctx := context.Background()
	a.session.Bootstrap(ctx)

	require.NoError(t, a.ResetLocalData(ctx))
	require.False(t, a.session.IsAuthenticated())
	require.Equal(t, routes.RouteHome, a.route, "an anonymous reset must not navigate")
}

func TestRegister_UnknownAccountTypeRejectedLocally(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t, models.RoleAcheteur)
	a.session.Bootstrap(context.Background())

	answers := []string{"Awa", "Diop", "770000000", "", "admin"}
	origText := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	t.Cleanup(func() { getSimpleText = origText })

	origPw := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { getPassword = origPw })

	err := a.Register(context.Background())
	require.ErrorContains(t, err, "unknown account type")
	require.False(t, a.session.IsAuthenticated())
}

func TestGetStatus(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t, models.RoleAcheteur)
	ctx := context.Background()
	a.session.Bootstrap(ctx)

	require.Equal(t, "/", a.getStatus())

	require.NoError(t, a.session.Login(ctx, "770000000", "secret"))
	require.Equal(t, "(Awa:acheteur) /acheteur", a.getStatus())
}
