package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

// FarmService groups the farmer-side flows that need more than a single
// request: the dashboard aggregation and photo uploads from disk. Plain CRUD
// goes straight through the API client.
type FarmService struct {
	api api.Client
	log logging.Logger
}

func NewFarmService(client api.Client, log logging.Logger) *FarmService {
	return &FarmService{api: client, log: log}
}

// Dashboard fetches the farmer statistics together with the farmer's own
// offers, the two datasets the dashboard view renders.
func (s *FarmService) Dashboard(ctx context.Context) (*models.FarmerStats, *models.OfferPage, error) {
	stats, err := s.api.GetFarmerStats(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch statistics: %w", err)
	}

	offers, err := s.api.ListMyOffers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch own offers: %w", err)
	}

	return stats, offers, nil
}

// AddExploitationPhoto uploads a photo from disk to an exploitation.
func (s *FarmService) AddExploitationPhoto(ctx context.Context, exploitationID, path string) (*models.Exploitation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	return s.api.UploadExploitationPhoto(ctx, exploitationID, filepath.Base(path), f)
}
