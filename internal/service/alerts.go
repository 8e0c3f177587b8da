package service

import (
	"context"

	"sitewatch/internal/models"
	"sitewatch/internal/repository"
)

// AlertQueryService is the read side of the alert history.
type AlertQueryService struct {
	alerts repository.AlertRepo
}

func NewAlertQueryService(alerts repository.AlertRepo) *AlertQueryService {
	return &AlertQueryService{alerts: alerts}
}

// History returns every alert in append order, oldest first. Callers reverse
// when they want recency-first display.
func (s *AlertQueryService) History(ctx context.Context) ([]models.Alert, error) {
	return s.alerts.ListAll(ctx)
}

// ForDevice returns the alerts referencing deviceID, in append order. Device
// ids on alerts are loose references; an unknown id just yields an empty list.
func (s *AlertQueryService) ForDevice(ctx context.Context, deviceID string) ([]models.Alert, error) {
	return s.alerts.ListByDevice(ctx, deviceID)
}
