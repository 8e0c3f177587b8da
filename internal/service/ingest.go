package service

import (
	"context"
	"fmt"
	"time"

	"sitewatch/internal/models"
	"sitewatch/internal/repository"
)

const (
	imageNameLayout = "20060102_150405"
	imageCaptureMsg = "Photo captured by device"
)

// IngestService handles the two alert-producing submission kinds: raw jpeg
// captures and form-encoded text messages.
type IngestService struct {
	alerts repository.AlertRepo
	images repository.ImageRepo
	msgLog repository.MessageLogRepo
}

func NewIngestService(alerts repository.AlertRepo, images repository.ImageRepo, msgLog repository.MessageLogRepo) *IngestService {
	return &IngestService{alerts: alerts, images: images, msgLog: msgLog}
}

// SubmitImage persists the raw bytes under a timestamp-derived name and
// appends an Image Captured alert referencing it. Two captures for the same
// second share a filename and the later write wins; that collision policy is
// accepted.
func (s *IngestService) SubmitImage(ctx context.Context, deviceID string, payload []byte) (models.Alert, error) {
	fname := time.Now().Format(imageNameLayout) + ".jpg"
	if err := s.images.Save(fname, payload); err != nil {
		return models.Alert{}, err
	}
	return s.alerts.Append(ctx, models.Alert{
		DeviceID:  deviceID,
		AlertType: models.AlertImageCaptured,
		Message:   imageCaptureMsg,
		Image:     fname,
	})
}

// SubmitMessage classifies the message, appends the alert, then appends the
// audit line. The two writes are independent; if the audit append fails the
// already durable alert stays. Drift between the two files is accepted.
func (s *IngestService) SubmitMessage(ctx context.Context, deviceID, message string) (models.Alert, error) {
	timestamp := time.Now().Format(models.TimestampLayout)

	alert, err := s.alerts.Append(ctx, models.Alert{
		DeviceID:  deviceID,
		AlertType: ClassifyMessage(message),
		Message:   message,
		Timestamp: timestamp,
		Image:     models.PlaceholderImage,
	})
	if err != nil {
		return models.Alert{}, err
	}

	line := fmt.Sprintf("%s | %s | %s", timestamp, deviceID, message)
	if err := s.msgLog.Append(line); err != nil {
		return alert, err
	}
	return alert, nil
}

// RecentMessages returns the newest audit lines for the legacy history view.
func (s *IngestService) RecentMessages(n int) ([]string, error) {
	return s.msgLog.Recent(n)
}

// RecentImages returns the newest stored capture filenames.
func (s *IngestService) RecentImages(n int) ([]string, error) {
	return s.images.Recent(n)
}

// ImagePath resolves a stored capture filename to a servable path.
func (s *IngestService) ImagePath(name string) (string, error) {
	return s.images.Path(name)
}
