package api

import (
	"context"
	"io"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

func (c *RESTClient) ListExploitations(ctx context.Context) ([]models.Exploitation, error) {
	var list []models.Exploitation
	if err := c.do(ctx, http.MethodGet, "/agriculteurs/exploitations", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *RESTClient) GetExploitation(ctx context.Context, id string) (*models.Exploitation, error) {
	var e models.Exploitation
	if err := c.do(ctx, http.MethodGet, "/agriculteurs/exploitations/"+id, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *RESTClient) CreateExploitation(ctx context.Context, in models.ExploitationInput) (*models.Exploitation, error) {
	var e models.Exploitation
	if err := c.do(ctx, http.MethodPost, "/agriculteurs/exploitations", in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *RESTClient) UpdateExploitation(ctx context.Context, id string, in models.ExploitationInput) (*models.Exploitation, error) {
	var e models.Exploitation
	if err := c.do(ctx, http.MethodPut, "/agriculteurs/exploitations/"+id, in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *RESTClient) DeleteExploitation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/agriculteurs/exploitations/"+id, nil, nil)
}

func (c *RESTClient) UploadExploitationPhoto(ctx context.Context, id, filename string, file io.Reader) (*models.Exploitation, error) {
	var e models.Exploitation
	if err := c.doMultipart(ctx, "/agriculteurs/exploitations/"+id+"/upload", "photo", filename, file, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *RESTClient) GetFarmerStats(ctx context.Context) (*models.FarmerStats, error) {
	var s models.FarmerStats
	if err := c.do(ctx, http.MethodGet, "/agriculteurs/statistiques", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
