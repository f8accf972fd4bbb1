package api

import (
	"context"
	"io"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

// Client is the full REST surface consumed by the services and contexts.
// The concrete implementation is RESTClient; tests provide fakes, usually by
// embedding Client in a struct and overriding the methods they need.
type Client interface {
	// SetAuthToken installs the bearer token used on all subsequent requests.
	SetAuthToken(token string)
	// ClearAuthToken removes the bearer token. Safe to call when none is set.
	ClearAuthToken()

	// Auth.
	Login(ctx context.Context, telephone, motDePasse string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	// Produits.
	ListProducts(ctx context.Context, page int, keyword string) (*models.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, in models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Offres.
	ListOffers(ctx context.Context, page int, keyword string) (*models.OfferPage, error)
	GetOffer(ctx context.Context, id string) (*models.Offer, error)
	ListMyOffers(ctx context.Context) (*models.OfferPage, error)
	CreateOffer(ctx context.Context, in models.OfferInput) (*models.Offer, error)
	UpdateOffer(ctx context.Context, id string, in models.OfferInput) (*models.Offer, error)
	DeleteOffer(ctx context.Context, id string) error

	// Commandes.
	CreateOrder(ctx context.Context, in models.OrderInput) (*models.Order, error)
	ListOrders(ctx context.Context, page int) (*models.OrderPage, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListSellerOrders(ctx context.Context, page int) (*models.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, id, statut string) (*models.Order, error)

	// Paiements.
	CreatePayment(ctx context.Context, in models.PaymentInput) (*models.Payment, error)
	SimulateOrangeMoney(ctx context.Context, in models.PaymentInput) (*models.Payment, error)
	SimulateWave(ctx context.Context, in models.PaymentInput) (*models.Payment, error)
	UploadPaymentProof(ctx context.Context, paymentID, filename string, file io.Reader) (*models.Payment, error)

	// Agriculteurs.
	ListExploitations(ctx context.Context) ([]models.Exploitation, error)
	GetExploitation(ctx context.Context, id string) (*models.Exploitation, error)
	CreateExploitation(ctx context.Context, in models.ExploitationInput) (*models.Exploitation, error)
	UpdateExploitation(ctx context.Context, id string, in models.ExploitationInput) (*models.Exploitation, error)
	DeleteExploitation(ctx context.Context, id string) error
	UploadExploitationPhoto(ctx context.Context, id, filename string, file io.Reader) (*models.Exploitation, error)
	GetFarmerStats(ctx context.Context) (*models.FarmerStats, error)

	// Notifications.
	ListNotifications(ctx context.Context) (*models.NotificationList, error)
	GetUnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}
