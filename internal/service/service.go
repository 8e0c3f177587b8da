package service

import (
	"context"
	"time"

	"sitewatch/internal/models"
	"sitewatch/internal/registry"
	"sitewatch/internal/repository"
)

// Ingest accepts device submissions routed by transport content type. Each
// call produces at most one alert record.
type Ingest interface {
	SubmitImage(ctx context.Context, deviceID string, payload []byte) (models.Alert, error)
	SubmitMessage(ctx context.Context, deviceID, message string) (models.Alert, error)
	RecentMessages(n int) ([]string, error)
	RecentImages(n int) ([]string, error)
	ImagePath(name string) (string, error)
}

// Power is the per-device supply tracker and its severity classification.
type Power interface {
	Status(ctx context.Context, deviceID string) (models.PowerStatus, error)
	Update(ctx context.Context, deviceID string, main, backup bool) error
}

// Alerts exposes the read side of the alert history.
type Alerts interface {
	History(ctx context.Context) ([]models.Alert, error)
	ForDevice(ctx context.Context, deviceID string) ([]models.Alert, error)
}

// Simulator drives demo power fluctuations through the same update path real
// devices use. Stop Run via context cancellation.
type Simulator interface {
	Perturb(ctx context.Context, deviceID string) (models.PowerStatus, error)
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Ingest
	Power
	Alerts
	Simulator
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, reg *registry.Registry) *Service {
	return &Service{
		Ingest:    NewIngestService(repos.Alerts, repos.Images, repos.Messages),
		Power:     NewPowerService(repos.Power),
		Alerts:    NewAlertQueryService(repos.Alerts),
		Simulator: NewSimulatorService(repos.Power, repos.Alerts, reg.IDs()),
	}
}
