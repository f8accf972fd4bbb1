package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

// ShowCart prints the cart lines and the derived totals.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Votre panier est vide.")
		return nil
	}

	for _, it := range items {
		printlnFn(fmt.Sprintf("%s  %-20s %d x %s = %s",
			it.OffreID, it.NomProduit, it.Quantite, fcfa(it.PrixUnitaire),
			fcfa(int64(it.Quantite)*it.PrixUnitaire)))
	}
	printlnFn(fmt.Sprintf("Total : %d articles, %s", a.cart.TotalItems(), fcfa(a.cart.TotalPrice())))
	return nil
}

// AddToCart fetches the offer and adds it to the cart with the requested
// quantity (default 1). The cart engine enforces the stock bound and merges
// with an existing line for the same offer.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	offerID := args[0]
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			printlnFn("Quantité invalide :", args[1])
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		qty = n
	}

	o, err := a.api.GetOffer(ctx, offerID)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Offre introuvable"))
		return err
	}

	a.cart.AddItem(ctx, models.CartItem{
		OffreID:         o.ID,
		NomProduit:      o.Produit.Nom,
		PrixUnitaire:    o.PrixUnitaire,
		Quantite:        qty,
		VendeurNom:      o.VendeurNom(),
		Image:           o.Image,
		StockDisponible: o.StockDisponible,
	})
	return nil
}

// RemoveFromCart drops one line from the cart.
func (a *App) RemoveFromCart(ctx context.Context, id string) error {
	a.cart.RemoveItem(ctx, id)
	return nil
}

// SetQuantity sets the quantity of a cart line. Values below 1 are raised to
// 1 before the cart applies its stock bound.
func (a *App) SetQuantity(ctx context.Context, id, qty string) error {
	n, err := strconv.Atoi(qty)
	if err != nil {
		printlnFn("Quantité invalide :", qty)
		return fmt.Errorf("invalid quantity %q", qty)
	}
	if n < 1 {
		n = 1
	}

	a.cart.UpdateQuantity(ctx, id, n)
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear(ctx)
	printlnFn("Panier vidé.")
	return nil
}
