package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

// Checkout walks through the checkout form: delivery address, payment
// method, and the mobile money number when one is needed. The order is
// placed from the current cart.
func (a *App) Checkout(ctx context.Context) error {
	if len(a.cart.Items()) == 0 {
		printlnFn("Votre panier est vide.")
		return nil
	}

	if err := a.ShowCart(ctx); err != nil {
		return err
	}

	adresse, err := getSimpleText(a.reader, "Adresse de livraison", os.Stdout)
	if err != nil {
		return err
	}
	methode, err := getSimpleText(a.reader, "Mode de paiement (orange_money/wave/especes)", os.Stdout)
	if err != nil {
		return err
	}

	telephone := ""
	if methode == models.PaymentOrangeMoney || methode == models.PaymentWave {
		telephone, err = getSimpleText(a.reader, "Numéro mobile money", os.Stdout)
		if err != nil {
			return err
		}
	}

	order, payment, err := a.checkout.Checkout(ctx, adresse, methode, telephone)
	if err != nil {
		if order != nil {
			printlnFn("Commande", order.ID, "enregistrée, mais le paiement a échoué :",
				api.ServerMessage(err, "Erreur de paiement"))
			return err
		}
		printlnFn(api.ServerMessage(err, "Erreur lors de la commande"))
		return err
	}

	printlnFn("Commande", order.ID, "enregistrée.")
	printlnFn("Paiement", payment.ID, ":", payment.Statut)
	return nil
}

// Orders lists the buyer's orders.
func (a *App) Orders(ctx context.Context) error {
	res, err := a.api.ListOrders(ctx, 1)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement des commandes"))
		return err
	}

	for _, o := range res.Commandes {
		printlnFn(fmt.Sprintf("%s  %s  %10s  %s",
			o.ID, formatDate(o.DateCreation), fcfa(o.MontantTotal), o.Statut))
	}
	return nil
}

// Order shows one order with its lines.
func (a *App) Order(ctx context.Context, id string) error {
	o, err := a.api.GetOrder(ctx, id)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Commande introuvable"))
		return err
	}

	printlnFn("Commande", o.ID, "-", o.Statut)
	for _, l := range o.Articles {
		printlnFn(fmt.Sprintf("  %-20s %d x %s", l.NomProduit, l.Quantite, fcfa(l.PrixUnitaire)))
	}
	printlnFn("Total :", fcfa(o.MontantTotal))
	if o.AdresseLivraison != "" {
		printlnFn("Livraison :", o.AdresseLivraison)
	}
	return nil
}

// UploadProof attaches a proof-of-payment file to a payment.
func (a *App) UploadProof(ctx context.Context, paymentID, path string) error {
	p, err := a.checkout.UploadProof(ctx, paymentID, path)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de l'envoi de la preuve"))
		return err
	}
	printlnFn("Preuve envoyée, paiement", p.ID, ":", p.Statut)
	return nil
}

// SellerOrders lists the orders containing the farmer's offers.
func (a *App) SellerOrders(ctx context.Context) error {
	res, err := a.api.ListSellerOrders(ctx, 1)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement des commandes"))
		return err
	}

	for _, o := range res.Commandes {
		printlnFn(fmt.Sprintf("%s  %s  %10s  %s",
			o.ID, formatDate(o.DateCreation), fcfa(o.MontantTotal), o.Statut))
	}
	return nil
}

// SetOrderStatus advances an order through the fulfilment statuses.
func (a *App) SetOrderStatus(ctx context.Context, id, statut string) error {
	switch statut {
	case models.OrderConfirmee, models.OrderEnLivraison, models.OrderLivree, models.OrderAnnulee:
	default:
		printlnFn("Statut inconnu :", statut)
		return fmt.Errorf("unknown order status %q", statut)
	}

	o, err := a.api.UpdateOrderStatus(ctx, id, statut)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la mise à jour du statut"))
		return err
	}
	printlnFn("Commande", o.ID, ":", o.Statut)
	return nil
}
