package api

import (
	"context"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

func (c *RESTClient) ListProducts(ctx context.Context, page int, keyword string) (*models.ProductPage, error) {
	var p models.ProductPage
	if err := c.do(ctx, http.MethodGet, "/produits"+listQuery(page, keyword), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodGet, "/produits/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) GetCategories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := c.do(ctx, http.MethodGet, "/produits/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *RESTClient) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPost, "/produits", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) UpdateProduct(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPut, "/produits/"+id, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/produits/"+id, nil, nil)
}
