package repository

import (
	"context"
	"errors"

	"sitewatch/internal/models"
)

// ErrDeviceNotFound is returned by power-state lookups for unregistered ids.
var ErrDeviceNotFound = errors.New("device not found")

// AlertRepo is the append-only alert history. Append assigns the id and makes
// the record durable before returning.
type AlertRepo interface {
	Append(ctx context.Context, a models.Alert) (models.Alert, error)
	ListAll(ctx context.Context) ([]models.Alert, error)
	ListByDevice(ctx context.Context, deviceID string) ([]models.Alert, error)
}

// PowerRepo holds the current per-device supply booleans.
type PowerRepo interface {
	Get(deviceID string) (models.PowerState, error)
	Set(deviceID string, main, backup bool) (models.PowerState, error)
}

// MessageLogRepo is the plain-text audit trail of message submissions.
type MessageLogRepo interface {
	Append(line string) error
	Recent(n int) ([]string, error)
}

// ImageRepo stores raw image blobs by filename.
type ImageRepo interface {
	Save(name string, data []byte) error
	Recent(n int) ([]string, error)
	Path(name string) (string, error)
}

type Repository struct {
	Alerts   AlertRepo
	Power    PowerRepo
	Messages MessageLogRepo
	Images   ImageRepo
}

// StorageConfig names the flat-file locations backing the repositories.
type StorageConfig struct {
	AlertsFile   string
	MessagesFile string
	ImagesDir    string
}

// NewRepository wires the file-backed stores and seeds power state for every
// registered device. Loading a missing or corrupt alert history yields an
// empty collection rather than an error, so startup never blocks on bad
// history.
func NewRepository(cfg StorageConfig, deviceIDs []string) (*Repository, error) {
	images, err := NewImageStore(cfg.ImagesDir)
	if err != nil {
		return nil, err
	}
	return &Repository{
		Alerts:   NewAlertFile(cfg.AlertsFile),
		Power:    NewPowerMem(deviceIDs),
		Messages: NewMessageLog(cfg.MessagesFile),
		Images:   images,
	}, nil
}
