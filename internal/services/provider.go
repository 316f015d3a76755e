package services

import (
	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/codec"
	"github.com/soeforge/rotation-builder/internal/repositories/rotations"
	analysisService "github.com/soeforge/rotation-builder/internal/services/analysis"
	rotationService "github.com/soeforge/rotation-builder/internal/services/rotation"
)

// Provider holds all service instances
type Provider struct {
	RotationService rotationService.Service
	AnalysisService analysisService.Service
	Codec           *codec.Registry
	Catalog         gamedata.Client
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog            gamedata.Client
	RotationRepository rotations.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = gamedata.New()
	}

	// Use in-memory repository if none provided
	rotationRepo := cfg.RotationRepository
	if rotationRepo == nil {
		rotationRepo = rotations.NewInMemoryRepository()
	}

	rotService := rotationService.NewService(&rotationService.ServiceConfig{
		Catalog:    catalog,
		Repository: rotationRepo,
	})

	return &Provider{
		RotationService: rotService,
		AnalysisService: analysisService.NewService(),
		Codec:           codec.NewDefaultRegistry(&codec.Config{Catalog: catalog}),
		Catalog:         catalog,
	}
}
