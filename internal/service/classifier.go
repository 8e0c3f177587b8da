package service

import (
	"strings"

	"sitewatch/internal/models"
)

// ClassifyMessage maps free-text message content to an alert type. Rules are
// substring tests and are not mutually exclusive, so evaluation order is part
// of the contract: the first matching rule wins.
func ClassifyMessage(message string) string {
	switch {
	case strings.Contains(message, "Access status changed"):
		return models.AlertAccessStatusChange
	case strings.Contains(message, "Vibration detected"):
		return models.AlertVibration
	case strings.Contains(message, "ALERT:") && strings.Contains(message, "Access Denied"):
		return models.AlertCritical
	case strings.Contains(message, "Door opened"):
		return models.AlertDoor
	default:
		return models.AlertGeneral
	}
}
