package service

import (
	"context"
	"math/rand"
	"time"

	"sitewatch/internal/models"
	"sitewatch/internal/repository"
)

// supplyOutcome is one candidate result of a simulated fluctuation.
type supplyOutcome struct {
	Main   bool
	Backup bool
}

// defaultScenarios reproduces the reference weighting: the both-active
// outcome is listed seven times and no degraded outcome is listed at all, so
// the literal behavior always lands on both-active.
// TODO: add the degraded entries once the demo is supposed to show failures;
// until then the alert branches below only fire with an injected table.
var defaultScenarios = []supplyOutcome{
	{Main: true, Backup: true},
	{Main: true, Backup: true},
	{Main: true, Backup: true},
	{Main: true, Backup: true},
	{Main: true, Backup: true},
	{Main: true, Backup: true},
	{Main: true, Backup: true},
}

// randSource is the slice-index picker behind scenario selection. Injectable
// so tests can drive deterministic sequences.
type randSource interface {
	Intn(n int) int
}

// SimulatorService produces demo power fluctuations for registered devices.
type SimulatorService struct {
	power     repository.PowerRepo
	alerts    repository.AlertRepo
	deviceIDs []string

	rnd       randSource
	scenarios []supplyOutcome
}

// NewSimulatorService returns a simulator with the reference scenario table
// and a time-seeded random source.
func NewSimulatorService(power repository.PowerRepo, alerts repository.AlertRepo, deviceIDs []string) *SimulatorService {
	return &SimulatorService{
		power:     power,
		alerts:    alerts,
		deviceIDs: deviceIDs,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		scenarios: defaultScenarios,
	}
}

// Perturb draws one outcome, applies it through the tracker, and emits a
// power alert when the resulting state is degraded.
func (s *SimulatorService) Perturb(ctx context.Context, deviceID string) (models.PowerStatus, error) {
	// Fail before drawing so an unknown device never consumes randomness.
	if _, err := s.power.Get(deviceID); err != nil {
		return models.PowerStatus{}, err
	}

	outcome := s.scenarios[s.rnd.Intn(len(s.scenarios))]
	st, err := s.power.Set(deviceID, outcome.Main, outcome.Backup)
	if err != nil {
		return models.PowerStatus{}, err
	}

	switch {
	case !outcome.Main && outcome.Backup:
		_, err = s.alerts.Append(ctx, models.Alert{
			DeviceID:  deviceID,
			AlertType: models.AlertPower,
			Message:   "Main supply failed - Running on BACKUP power",
			Image:     models.PlaceholderImage,
		})
	case !outcome.Main && !outcome.Backup:
		_, err = s.alerts.Append(ctx, models.Alert{
			DeviceID:  deviceID,
			AlertType: models.AlertCriticalPower,
			Message:   "CRITICAL: No Power Available",
			Image:     models.PlaceholderImage,
		})
	}
	if err != nil {
		return models.PowerStatus{}, err
	}
	return statusView(deviceID, st), nil
}

// Run perturbs every registered device on each tick until ctx is canceled.
// Demo facility only; gated behind config in main.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for _, id := range s.deviceIDs {
				_, _ = s.Perturb(ctx, id)
			}
		}
	}
}
