package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"sitewatch/internal/models"
)

// AlertFile is the canonical alert history, held in memory and mirrored to a
// single JSON-array file. Every append rewrites the whole file; volume is low
// enough that simplicity wins over throughput here.
type AlertFile struct {
	mu     sync.Mutex
	path   string
	alerts []models.Alert
}

// NewAlertFile opens the history at path. A missing or unparseable file
// starts an empty history; corrupt history must never block ingestion.
func NewAlertFile(path string) *AlertFile {
	s := &AlertFile{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var alerts []models.Alert
	if err := json.Unmarshal(data, &alerts); err != nil {
		return s
	}
	s.alerts = alerts
	return s
}

// Append assigns id = count+1, fills a missing timestamp, persists the whole
// collection, and only then commits the record in memory. Id assignment and
// the durable write share one critical section so concurrent appenders can
// neither duplicate ids nor interleave file rewrites.
func (s *AlertFile) Append(ctx context.Context, a models.Alert) (models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = len(s.alerts) + 1
	if a.Timestamp == "" {
		a.Timestamp = time.Now().Format(models.TimestampLayout)
	}

	candidate := append(append([]models.Alert(nil), s.alerts...), a)
	if err := s.persist(candidate); err != nil {
		return models.Alert{}, fmt.Errorf("persist alert history: %w", err)
	}
	s.alerts = candidate
	return a, nil
}

// ListAll returns the history in append order, oldest first.
func (s *AlertFile) ListAll(ctx context.Context) ([]models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}

// ListByDevice filters the history by device id, preserving append order.
func (s *AlertFile) ListByDevice(ctx context.Context, deviceID string) ([]models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Alert, 0)
	for _, a := range s.alerts {
		if a.DeviceID == deviceID {
			out = append(out, a)
		}
	}
	return out, nil
}

// persist writes the full collection. Indented to stay diffable and readable
// by the existing dashboard tooling.
func (s *AlertFile) persist(alerts []models.Alert) error {
	b, err := json.MarshalIndent(alerts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}
