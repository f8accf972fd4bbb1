package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/client/routes"
)

type fakeExec struct {
	loggedIn bool
	role     string

	calls  []string
	denied []routes.Route
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

// allowed mimics the gate: public-ish commands are reachable only when the
// role matches; denials are recorded for assertions.
func (f *fakeExec) allowed(to routes.Route) bool {
	spec := routes.Resolve(string(to))
	out := routes.Evaluate(routes.SessionState{
		IsAuthenticated: f.loggedIn,
		Role:            models.Role(f.role),
	}, spec.Role)
	if out != routes.OutcomeAllow {
		f.denied = append(f.denied, to)
		return false
	}
	return true
}

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error      { return f.record("whoami") }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("profile") }
func (f *fakeExec) ResetLocalData(ctx context.Context) error {
	f.loggedIn = false
	return f.record("reset")
}

func (f *fakeExec) Products(ctx context.Context, args []string) error { return f.record("products") }
func (f *fakeExec) Product(ctx context.Context, id string) error      { return f.record("product " + id) }
func (f *fakeExec) Categories(ctx context.Context) error              { return f.record("categories") }
func (f *fakeExec) Offers(ctx context.Context, args []string) error   { return f.record("offers") }
func (f *fakeExec) Offer(ctx context.Context, id string) error        { return f.record("offer " + id) }

func (f *fakeExec) ShowCart(ctx context.Context) error { return f.record("cart") }
func (f *fakeExec) AddToCart(ctx context.Context, args []string) error {
	return f.record("add " + strings.Join(args, " "))
}
func (f *fakeExec) RemoveFromCart(ctx context.Context, id string) error {
	return f.record("remove " + id)
}
func (f *fakeExec) SetQuantity(ctx context.Context, id, qty string) error {
	return f.record("qty " + id + " " + qty)
}
func (f *fakeExec) ClearCart(ctx context.Context) error        { return f.record("clearcart") }
func (f *fakeExec) Checkout(ctx context.Context) error         { return f.record("checkout") }
func (f *fakeExec) Orders(ctx context.Context) error           { return f.record("orders") }
func (f *fakeExec) Order(ctx context.Context, id string) error { return f.record("order " + id) }
func (f *fakeExec) UploadProof(ctx context.Context, paymentID, path string) error {
	return f.record("proof " + paymentID)
}

func (f *fakeExec) Dashboard(ctx context.Context) error { return f.record("dashboard") }
func (f *fakeExec) MyOffers(ctx context.Context) error  { return f.record("myoffers") }
func (f *fakeExec) NewOffer(ctx context.Context) error  { return f.record("newoffer") }
func (f *fakeExec) EditOffer(ctx context.Context, id string) error {
	return f.record("editoffer " + id)
}
func (f *fakeExec) DeleteOffer(ctx context.Context, id string) error {
	return f.record("deloffer " + id)
}
func (f *fakeExec) NewProduct(ctx context.Context) error   { return f.record("newproduct") }
func (f *fakeExec) SellerOrders(ctx context.Context) error { return f.record("sellerorders") }
func (f *fakeExec) SetOrderStatus(ctx context.Context, id, statut string) error {
	return f.record("status " + id + " " + statut)
}
func (f *fakeExec) Farms(ctx context.Context) error               { return f.record("farms") }
func (f *fakeExec) NewFarm(ctx context.Context) error             { return f.record("newfarm") }
func (f *fakeExec) EditFarm(ctx context.Context, id string) error { return f.record("editfarm " + id) }
func (f *fakeExec) DeleteFarm(ctx context.Context, id string) error {
	return f.record("delfarm " + id)
}
func (f *fakeExec) AddFarmPhoto(ctx context.Context, id, path string) error {
	return f.record("photo " + id)
}

func (f *fakeExec) Notifications(ctx context.Context) error { return f.record("notifications") }
func (f *fakeExec) ReadNotification(ctx context.Context, id string) error {
	return f.record("read " + id)
}
func (f *fakeExec) ReadAllNotifications(ctx context.Context) error { return f.record("readall") }
func (f *fakeExec) DeleteNotification(ctx context.Context, id string) error {
	return f.record("delnotif " + id)
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func replRun(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "s" }, sc)
}

func TestRunREPL_BuyerFlow(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{role: "acheteur"}
	replRun(t, exec,
		"help",
		"products 2 riz",
		"login",
		"add o1 3",
		"cart",
		"qty o1 5",
		"checkout",
		"orders",
		"order c1",
		"foobar",
		"exit",
	)

	want := []string{
		"products", "login", "add o1 3", "cart", "qty o1 5",
		"checkout", "orders", "order c1",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, c, want[i], exec.calls)
		}
	}
}

func TestRunREPL_GateBlocksBeforeLogin(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{role: "acheteur"}
	replRun(t, exec, "cart", "checkout", "whoami", "exit")

	if len(exec.calls) != 0 {
		t.Fatalf("gated commands ran while logged out: %v", exec.calls)
	}
	wantDenied := []routes.Route{routes.RouteCart, routes.RouteCheckout, routes.RouteProfile}
	if len(exec.denied) != len(wantDenied) {
		t.Fatalf("denials mismatch: got %v, want %v", exec.denied, wantDenied)
	}
}

func TestRunREPL_GateHidesFarmerCommandsFromBuyer(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true, role: "acheteur"}
	replRun(t, exec, "dashboard", "farms", "cart", "exit")

	want := []string{"cart"}
	if len(exec.calls) != 1 || exec.calls[0] != want[0] {
		t.Fatalf("got %v, want %v", exec.calls, want)
	}
	if len(exec.denied) != 2 {
		t.Fatalf("expected two denials, got %v", exec.denied)
	}
}

func TestRunREPL_FarmerCommands(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true, role: "agriculteur"}
	replRun(t, exec,
		"dashboard",
		"myoffers",
		"newoffer",
		"editoffer o1",
		"status c1 confirmee",
		"farms",
		"photo e1 champ.jpg",
		"quit",
	)

	want := []string{
		"dashboard", "myoffers", "newoffer", "editoffer o1",
		"status c1 confirmee", "farms", "photo e1",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, c, want[i])
		}
	}
}

func TestRunREPL_ResetIsAvailableLoggedOut(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{role: "acheteur"}
	replRun(t, exec, "reset", "exit")

	if len(exec.calls) != 1 || exec.calls[0] != "reset" {
		t.Fatalf("got %v, want [reset]", exec.calls)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true, role: "acheteur"}
	replRun(t, exec, "order", "qty o1", "read", "quit")

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_NotificationCommands(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{loggedIn: true, role: "acheteur"}
	replRun(t, exec, "notifications", "read n1", "readall", "delnotif n2", "exit")

	want := []string{"notifications", "read n1", "readall", "delnotif n2"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
}
