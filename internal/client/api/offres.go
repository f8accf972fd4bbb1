package api

import (
	"context"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

func (c *RESTClient) ListOffers(ctx context.Context, page int, keyword string) (*models.OfferPage, error) {
	var p models.OfferPage
	if err := c.do(ctx, http.MethodGet, "/offres"+listQuery(page, keyword), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	var o models.Offer
	if err := c.do(ctx, http.MethodGet, "/offres/"+id, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListMyOffers returns the authenticated seller's own offers.
func (c *RESTClient) ListMyOffers(ctx context.Context) (*models.OfferPage, error) {
	var p models.OfferPage
	if err := c.do(ctx, http.MethodGet, "/offres?vendeur=me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) CreateOffer(ctx context.Context, in models.OfferInput) (*models.Offer, error) {
	var o models.Offer
	if err := c.do(ctx, http.MethodPost, "/offres", in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *RESTClient) UpdateOffer(ctx context.Context, id string, in models.OfferInput) (*models.Offer, error) {
	var o models.Offer
	if err := c.do(ctx, http.MethodPut, "/offres/"+id, in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *RESTClient) DeleteOffer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/offres/"+id, nil, nil)
}
