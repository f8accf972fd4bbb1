package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/agroconnect/agroconnect-cli/internal/client/routes"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	allowed(to routes.Route) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ResetLocalData(ctx context.Context) error

	Products(ctx context.Context, args []string) error
	Product(ctx context.Context, id string) error
	Categories(ctx context.Context) error
	Offers(ctx context.Context, args []string) error
	Offer(ctx context.Context, id string) error

	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	RemoveFromCart(ctx context.Context, id string) error
	SetQuantity(ctx context.Context, id, qty string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Order(ctx context.Context, id string) error
	UploadProof(ctx context.Context, paymentID, path string) error

	Dashboard(ctx context.Context) error
	MyOffers(ctx context.Context) error
	NewOffer(ctx context.Context) error
	EditOffer(ctx context.Context, id string) error
	DeleteOffer(ctx context.Context, id string) error
	NewProduct(ctx context.Context) error
	SellerOrders(ctx context.Context) error
	SetOrderStatus(ctx context.Context, id, statut string) error
	Farms(ctx context.Context) error
	NewFarm(ctx context.Context) error
	EditFarm(ctx context.Context, id string) error
	DeleteFarm(ctx context.Context, id string) error
	AddFarmPhoto(ctx context.Context, id, path string) error

	Notifications(ctx context.Context) error
	ReadNotification(ctx context.Context, id string) error
	ReadAllNotifications(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}

const helpPublic = `Commandes disponibles :
  register, login
  products [page] [mot-clé], product <id>, categories
  offers [page] [mot-clé], offer <id>
  reset, exit`

const helpLoggedIn = `Commandes disponibles :
  whoami, profile, logout
  products [page] [mot-clé], product <id>, categories
  offers [page] [mot-clé], offer <id>
  cart, add <offre> [qté], remove <offre>, qty <offre> <n>, clearcart, checkout
  orders, order <id>, proof <paiement> <fichier>
  dashboard, myoffers, newoffer, editoffer <id>, deloffer <id>, newproduct
  sellerorders, status <commande> <statut>
  farms, newfarm, editfarm <id>, delfarm <id>, photo <ferme> <fichier>
  notifications, read <id>, readall, delnotif <id>
  reset, exit`

// runREPL starts a read-eval-print loop over scanner.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Role-gated commands first pass through a.allowed with the
// route the command's view lives on; a denial prints the redirect notice and
// skips the handler. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ac %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpPublic)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "reset":
			_ = a.ResetLocalData(ctx)
		case "whoami":
			if a.allowed(routes.RouteProfile) {
				_ = a.Whoami(ctx)
			}
		case "profile":
			if a.allowed(routes.RouteProfile) {
				_ = a.EditProfile(ctx)
			}

		case "products":
			_ = a.Products(ctx, args)
		case "product":
			if len(args) == 0 {
				printlnFn("Usage: product <id>")
				continue
			}
			_ = a.Product(ctx, args[0])
		case "categories":
			_ = a.Categories(ctx)
		case "offers":
			_ = a.Offers(ctx, args)
		case "offer":
			if len(args) == 0 {
				printlnFn("Usage: offer <id>")
				continue
			}
			_ = a.Offer(ctx, args[0])

		case "cart":
			if a.allowed(routes.RouteCart) {
				_ = a.ShowCart(ctx)
			}
		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <offre> [quantité]")
				continue
			}
			if a.allowed(routes.RouteCart) {
				_ = a.AddToCart(ctx, args)
			}
		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <offre>")
				continue
			}
			if a.allowed(routes.RouteCart) {
				_ = a.RemoveFromCart(ctx, args[0])
			}
		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <offre> <quantité>")
				continue
			}
			if a.allowed(routes.RouteCart) {
				_ = a.SetQuantity(ctx, args[0], args[1])
			}
		case "clearcart":
			if a.allowed(routes.RouteCart) {
				_ = a.ClearCart(ctx)
			}
		case "checkout":
			if a.allowed(routes.RouteCheckout) {
				_ = a.Checkout(ctx)
			}
		case "orders":
			if a.allowed(routes.RouteOrders) {
				_ = a.Orders(ctx)
			}
		case "order":
			if len(args) == 0 {
				printlnFn("Usage: order <id>")
				continue
			}
			if a.allowed(routes.RouteOrders) {
				_ = a.Order(ctx, args[0])
			}
		case "proof":
			if len(args) < 2 {
				printlnFn("Usage: proof <paiement> <fichier>")
				continue
			}
			if a.allowed(routes.RouteOrders) {
				_ = a.UploadProof(ctx, args[0], args[1])
			}

		case "dashboard":
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.Dashboard(ctx)
			}
		case "myoffers":
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.MyOffers(ctx)
			}
		case "newoffer":
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.NewOffer(ctx)
			}
		case "editoffer":
			if len(args) == 0 {
				printlnFn("Usage: editoffer <id>")
				continue
			}
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.EditOffer(ctx, args[0])
			}
		case "deloffer":
			if len(args) == 0 {
				printlnFn("Usage: deloffer <id>")
				continue
			}
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.DeleteOffer(ctx, args[0])
			}
		case "newproduct":
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.NewProduct(ctx)
			}
		case "sellerorders":
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.SellerOrders(ctx)
			}
		case "status":
			if len(args) < 2 {
				printlnFn("Usage: status <commande> <statut>")
				continue
			}
			if a.allowed(routes.RouteAgriculteur) {
				_ = a.SetOrderStatus(ctx, args[0], args[1])
			}
		case "farms":
			if a.allowed(routes.RouteExploitations) {
				_ = a.Farms(ctx)
			}
		case "newfarm":
			if a.allowed(routes.RouteExploitations) {
				_ = a.NewFarm(ctx)
			}
		case "editfarm":
			if len(args) == 0 {
				printlnFn("Usage: editfarm <id>")
				continue
			}
			if a.allowed(routes.RouteExploitations) {
				_ = a.EditFarm(ctx, args[0])
			}
		case "delfarm":
			if len(args) == 0 {
				printlnFn("Usage: delfarm <id>")
				continue
			}
			if a.allowed(routes.RouteExploitations) {
				_ = a.DeleteFarm(ctx, args[0])
			}
		case "photo":
			if len(args) < 2 {
				printlnFn("Usage: photo <ferme> <fichier>")
				continue
			}
			if a.allowed(routes.RouteExploitations) {
				_ = a.AddFarmPhoto(ctx, args[0], args[1])
			}

		case "notifications":
			if a.allowed(routes.RouteProfile) {
				_ = a.Notifications(ctx)
			}
		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			if a.allowed(routes.RouteProfile) {
				_ = a.ReadNotification(ctx, args[0])
			}
		case "readall":
			if a.allowed(routes.RouteProfile) {
				_ = a.ReadAllNotifications(ctx)
			}
		case "delnotif":
			if len(args) == 0 {
				printlnFn("Usage: delnotif <id>")
				continue
			}
			if a.allowed(routes.RouteProfile) {
				_ = a.DeleteNotification(ctx, args[0])
			}

		case "exit", "quit":
			printlnFn("Au revoir !")
			return

		default:
			printlnFn("Commande inconnue :", cmd)
		}
	}
}
