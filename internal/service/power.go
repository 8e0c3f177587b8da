package service

import (
	"context"

	"sitewatch/internal/models"
	"sitewatch/internal/repository"
)

// Severity classes rendered by the dashboard.
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeverityDanger  = "danger"
)

// PowerService tracks supply state per device and derives its severity
// classification on read. Any boolean pair may follow any other; there is no
// illegal transition, matching real power hardware.
type PowerService struct {
	power repository.PowerRepo
}

func NewPowerService(power repository.PowerRepo) *PowerService {
	return &PowerService{power: power}
}

// classifySupply maps the (main, backup) pair to its label and severity.
// Total: exactly one of the four rows applies.
func classifySupply(main, backup bool) (label, class string) {
	switch {
	case main && backup:
		return "Normal - Both supplies active", SeveritySuccess
	case !main && backup:
		return "Running on BACKUP power", SeverityWarning
	case main && !backup:
		return "Main supply active, backup offline", SeverityInfo
	default:
		return "No Power Available - CRITICAL", SeverityDanger
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// statusView renders a snapshot into the client-facing classified form.
func statusView(deviceID string, st models.PowerState) models.PowerStatus {
	label, class := classifySupply(st.Main, st.Backup)
	return models.PowerStatus{
		DeviceID:     deviceID,
		MainSupply:   onOff(st.Main),
		BackupSupply: onOff(st.Backup),
		State:        label,
		StateClass:   class,
		LastUpdate:   st.LastUpdate.Format(models.TimestampLayout),
	}
}

// Status returns the classified power state for a registered device.
func (s *PowerService) Status(ctx context.Context, deviceID string) (models.PowerStatus, error) {
	st, err := s.power.Get(deviceID)
	if err != nil {
		return models.PowerStatus{}, err
	}
	return statusView(deviceID, st), nil
}

// Update atomically overwrites both supply booleans for a registered device.
// This is the sole external mutation entry point; real device reports and the
// simulator both land here via the repo.
func (s *PowerService) Update(ctx context.Context, deviceID string, main, backup bool) error {
	_, err := s.power.Set(deviceID, main, backup)
	return err
}
