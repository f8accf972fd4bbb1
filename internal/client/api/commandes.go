package api

import (
	"context"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

func (c *RESTClient) CreateOrder(ctx context.Context, in models.OrderInput) (*models.Order, error) {
	var o models.Order
	if err := c.do(ctx, http.MethodPost, "/commandes", in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *RESTClient) ListOrders(ctx context.Context, page int) (*models.OrderPage, error) {
	var p models.OrderPage
	if err := c.do(ctx, http.MethodGet, "/commandes"+listQuery(page, ""), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := c.do(ctx, http.MethodGet, "/commandes/"+id, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListSellerOrders returns orders containing the authenticated seller's offers.
func (c *RESTClient) ListSellerOrders(ctx context.Context, page int) (*models.OrderPage, error) {
	var p models.OrderPage
	if err := c.do(ctx, http.MethodGet, "/commandes/vendeur"+listQuery(page, ""), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) UpdateOrderStatus(ctx context.Context, id, statut string) (*models.Order, error) {
	body := map[string]string{"statut": statut}
	var o models.Order
	if err := c.do(ctx, http.MethodPut, "/commandes/"+id+"/statut", body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
