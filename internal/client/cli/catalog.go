package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
)

// parseListArgs interprets listing arguments: an optional leading page
// number, the rest joined as the search keyword.
func parseListArgs(args []string) (page int, keyword string) {
	page = 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			page = n
			args = args[1:]
		}
	}
	return page, strings.Join(args, " ")
}

// Products lists the product catalog, optionally filtered and paginated.
func (a *App) Products(ctx context.Context, args []string) error {
	page, keyword := parseListArgs(args)

	res, err := a.api.ListProducts(ctx, page, keyword)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement des produits"))
		return err
	}

	for _, p := range res.Produits {
		printlnFn(fmt.Sprintf("%s  %-20s %s", p.ID, p.Nom, p.Categorie))
	}
	printlnFn(fmt.Sprintf("Page %d/%d (%d produits)", res.Page, res.Pages, res.Total))
	return nil
}

// Product shows one catalog entry.
func (a *App) Product(ctx context.Context, id string) error {
	p, err := a.api.GetProduct(ctx, id)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Produit introuvable"))
		return err
	}

	printlnFn(fmt.Sprintf("%s (%s)", p.Nom, p.Categorie))
	if p.Description != "" {
		printlnFn(p.Description)
	}
	if p.Unite != "" {
		printlnFn("Unité :", p.Unite)
	}
	return nil
}

// Categories lists the catalog's categories.
func (a *App) Categories(ctx context.Context) error {
	cats, err := a.api.GetCategories(ctx)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement des catégories"))
		return err
	}
	for _, c := range cats {
		printlnFn(" -", c)
	}
	return nil
}

// Offers lists the published offers, optionally filtered and paginated.
func (a *App) Offers(ctx context.Context, args []string) error {
	page, keyword := parseListArgs(args)

	res, err := a.api.ListOffers(ctx, page, keyword)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement des offres"))
		return err
	}

	for _, o := range res.Offres {
		printlnFn(fmt.Sprintf("%s  %-20s %10s  stock %d  (%s)",
			o.ID, o.Produit.Nom, fcfa(o.PrixUnitaire), o.StockDisponible, o.VendeurNom()))
	}
	printlnFn(fmt.Sprintf("Page %d/%d (%d offres)", res.Page, res.Pages, res.Total))
	return nil
}

// Offer shows one offer.
func (a *App) Offer(ctx context.Context, id string) error {
	o, err := a.api.GetOffer(ctx, id)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Offre introuvable"))
		return err
	}

	printlnFn(o.Produit.Nom)
	printlnFn("Prix :", fcfa(o.PrixUnitaire))
	printlnFn("Stock :", o.StockDisponible, o.Unite)
	printlnFn("Vendeur :", o.VendeurNom())
	return nil
}
