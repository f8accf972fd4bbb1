package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/cart"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

var ErrEmptyCart = errors.New("le panier est vide")

// CheckoutService turns the current cart into an order and runs the chosen
// (simulated) payment flow.
type CheckoutService struct {
	api  api.Client
	cart *cart.Cart
	log  logging.Logger
}

func NewCheckoutService(client api.Client, c *cart.Cart, log logging.Logger) *CheckoutService {
	return &CheckoutService{api: client, cart: c, log: log}
}

// Checkout places an order from the cart, then creates the payment. Mobile
// money methods go through the backend's simulation endpoints; cash on
// delivery records a plain payment. The cart is cleared only after the order
// was accepted; a payment failure leaves the placed order standing for retry
// from the order detail view.
func (s *CheckoutService) Checkout(ctx context.Context, adresse, methode, telephone string) (*models.Order, *models.Payment, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, nil, ErrEmptyCart
	}

	lines := make([]models.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, models.OrderLine{
			OffreID:      it.OffreID,
			NomProduit:   it.NomProduit,
			Quantite:     it.Quantite,
			PrixUnitaire: it.PrixUnitaire,
		})
	}

	order, err := s.api.CreateOrder(ctx, models.OrderInput{
		Articles:         lines,
		AdresseLivraison: adresse,
		ModePaiement:     methode,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create order: %w", err)
	}

	s.cart.Clear(ctx)

	payment, err := s.pay(ctx, order, methode, telephone)
	if err != nil {
		s.log.Error(ctx, "payment failed after order placement", "commande", order.ID, "error", err)
		return order, nil, fmt.Errorf("create payment: %w", err)
	}

	return order, payment, nil
}

func (s *CheckoutService) pay(ctx context.Context, order *models.Order, methode, telephone string) (*models.Payment, error) {
	in := models.PaymentInput{
		CommandeID: order.ID,
		Montant:    order.MontantTotal,
		Methode:    methode,
		Telephone:  telephone,
		Reference:  uuid.NewString(),
	}

	switch methode {
	case models.PaymentOrangeMoney:
		return s.api.SimulateOrangeMoney(ctx, in)
	case models.PaymentWave:
		return s.api.SimulateWave(ctx, in)
	default:
		return s.api.CreatePayment(ctx, in)
	}
}

// UploadProof attaches a proof-of-payment image from disk to a payment.
func (s *CheckoutService) UploadProof(ctx context.Context, paymentID, path string) (*models.Payment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open proof file: %w", err)
	}
	defer f.Close()

	return s.api.UploadPaymentProof(ctx, paymentID, filepath.Base(path), f)
}
