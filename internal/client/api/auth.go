package api

import (
	"context"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

func (c *RESTClient) Login(ctx context.Context, telephone, motDePasse string) (*models.AuthResponse, error) {
	body := map[string]string{"telephone": telephone, "mot_de_passe": motDePasse}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) GetProfile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
