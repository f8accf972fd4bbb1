package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

// Dashboard prints the farmer's statistics and own offers.
func (a *App) Dashboard(ctx context.Context) error {
	stats, offers, err := a.farm.Dashboard(ctx)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement du tableau de bord"))
		return err
	}

	printlnFn("Produits :", stats.TotalProduits)
	printlnFn("Offres :", stats.TotalOffres)
	printlnFn("Commandes en cours :", stats.CommandesEnCours)
	printlnFn("Commandes livrées :", stats.CommandesLivrees)
	printlnFn("Revenus :", fcfa(stats.RevenusTotal))

	for _, o := range offers.Offres {
		printlnFn(fmt.Sprintf("%s  %-20s %10s  stock %d",
			o.ID, o.Produit.Nom, fcfa(o.PrixUnitaire), o.StockDisponible))
	}
	return nil
}

// MyOffers lists the farmer's own offers.
func (a *App) MyOffers(ctx context.Context) error {
	res, err := a.api.ListMyOffers(ctx)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement de vos offres"))
		return err
	}

	for _, o := range res.Offres {
		printlnFn(fmt.Sprintf("%s  %-20s %10s  stock %d  %s",
			o.ID, o.Produit.Nom, fcfa(o.PrixUnitaire), o.StockDisponible, o.Statut))
	}
	return nil
}

func (a *App) offerForm() (models.OfferInput, error) {
	produitID, err := getSimpleText(a.reader, "Identifiant du produit", os.Stdout)
	if err != nil {
		return models.OfferInput{}, err
	}
	prix, err := GetInt(a.reader, "Prix unitaire (FCFA)", os.Stdout)
	if err != nil {
		return models.OfferInput{}, err
	}
	stock, err := GetInt(a.reader, "Stock disponible", os.Stdout)
	if err != nil {
		return models.OfferInput{}, err
	}
	unite, err := getSimpleText(a.reader, "Unité (kg, sac, ...)", os.Stdout)
	if err != nil {
		return models.OfferInput{}, err
	}

	return models.OfferInput{
		ProduitID:       produitID,
		PrixUnitaire:    int64(prix),
		StockDisponible: stock,
		Unite:           unite,
	}, nil
}

// NewOffer creates an offer from an interactive form.
func (a *App) NewOffer(ctx context.Context) error {
	in, err := a.offerForm()
	if err != nil {
		return err
	}

	o, err := a.api.CreateOffer(ctx, in)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la création de l'offre"))
		return err
	}
	printlnFn("Offre", o.ID, "créée.")
	return nil
}

// EditOffer updates an existing offer from an interactive form.
func (a *App) EditOffer(ctx context.Context, id string) error {
	in, err := a.offerForm()
	if err != nil {
		return err
	}

	o, err := a.api.UpdateOffer(ctx, id, in)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la mise à jour de l'offre"))
		return err
	}
	printlnFn("Offre", o.ID, "mise à jour.")
	return nil
}

// DeleteOffer removes one of the farmer's offers.
func (a *App) DeleteOffer(ctx context.Context, id string) error {
	if err := a.api.DeleteOffer(ctx, id); err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la suppression de l'offre"))
		return err
	}
	printlnFn("Offre supprimée.")
	return nil
}

// NewProduct creates a catalog product from an interactive form.
func (a *App) NewProduct(ctx context.Context) error {
	nom, err := getSimpleText(a.reader, "Nom du produit", os.Stdout)
	if err != nil {
		return err
	}
	categorie, err := getSimpleText(a.reader, "Catégorie", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	unite, err := getSimpleText(a.reader, "Unité (kg, sac, ...)", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.api.CreateProduct(ctx, models.ProductInput{
		Nom:         nom,
		Categorie:   categorie,
		Description: description,
		Unite:       unite,
	})
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la création du produit"))
		return err
	}
	printlnFn("Produit", p.ID, "créé.")
	return nil
}

// Farms lists the farmer's exploitations.
func (a *App) Farms(ctx context.Context) error {
	res, err := a.api.ListExploitations(ctx)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors du chargement des exploitations"))
		return err
	}

	for _, e := range res {
		printlnFn(fmt.Sprintf("%s  %-20s %.1f ha  %s", e.ID, e.Nom, e.Superficie, e.Region))
	}
	return nil
}

func (a *App) farmForm() (models.ExploitationInput, error) {
	nom, err := getSimpleText(a.reader, "Nom de l'exploitation", os.Stdout)
	if err != nil {
		return models.ExploitationInput{}, err
	}
	superficie, err := getSimpleText(a.reader, "Superficie (hectares)", os.Stdout)
	if err != nil {
		return models.ExploitationInput{}, err
	}
	var ha float64
	if _, err := fmt.Sscanf(superficie, "%f", &ha); err != nil {
		return models.ExploitationInput{}, fmt.Errorf("superficie invalide %q", superficie)
	}
	region, err := getSimpleText(a.reader, "Région", os.Stdout)
	if err != nil {
		return models.ExploitationInput{}, err
	}
	cultures, err := getSimpleText(a.reader, "Types de culture (séparés par des virgules)", os.Stdout)
	if err != nil {
		return models.ExploitationInput{}, err
	}

	in := models.ExploitationInput{Nom: nom, Superficie: ha, Region: region}
	for _, c := range strings.Split(cultures, ",") {
		if c = strings.TrimSpace(c); c != "" {
			in.TypesCulture = append(in.TypesCulture, c)
		}
	}
	return in, nil
}

// NewFarm creates an exploitation from an interactive form.
func (a *App) NewFarm(ctx context.Context) error {
	in, err := a.farmForm()
	if err != nil {
		return err
	}

	e, err := a.api.CreateExploitation(ctx, in)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la création de l'exploitation"))
		return err
	}
	printlnFn("Exploitation", e.ID, "créée.")
	return nil
}

// EditFarm updates an exploitation from an interactive form.
func (a *App) EditFarm(ctx context.Context, id string) error {
	in, err := a.farmForm()
	if err != nil {
		return err
	}

	e, err := a.api.UpdateExploitation(ctx, id, in)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la mise à jour de l'exploitation"))
		return err
	}
	printlnFn("Exploitation", e.ID, "mise à jour.")
	return nil
}

// DeleteFarm removes an exploitation.
func (a *App) DeleteFarm(ctx context.Context, id string) error {
	if err := a.api.DeleteExploitation(ctx, id); err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de la suppression de l'exploitation"))
		return err
	}
	printlnFn("Exploitation supprimée.")
	return nil
}

// AddFarmPhoto uploads a photo from disk to an exploitation.
func (a *App) AddFarmPhoto(ctx context.Context, id, path string) error {
	e, err := a.farm.AddExploitationPhoto(ctx, id, path)
	if err != nil {
		printlnFn(api.ServerMessage(err, "Erreur lors de l'envoi de la photo"))
		return err
	}
	printlnFn("Photo ajoutée à", e.Nom, fmt.Sprintf("(%d photos)", len(e.Photos)))
	return nil
}
