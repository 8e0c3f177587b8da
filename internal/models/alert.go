package models

// Timestamp layout used everywhere an alert or power status is rendered.
// Matches the persisted history format, so do not change it casually.
const TimestampLayout = "2006-01-02 15:04:05"

// PlaceholderImage is the image reference used when no photo accompanies
// an alert.
const PlaceholderImage = "placeholder.jpg"

// UnknownDevice is substituted when a submission carries no device_id.
const UnknownDevice = "UNKNOWN"

// Alert taxonomy.
const (
	AlertImageCaptured      = "Image Captured"
	AlertAccessStatusChange = "Access Status Change"
	AlertVibration          = "Vibration Alert"
	AlertCritical           = "Critical Alert"
	AlertDoor               = "Door Alert"
	AlertGeneral            = "General Alert"
	AlertPower              = "Power Alert"
	AlertCriticalPower      = "Critical Power Alert"
)

// Alert is a single classified event record. The JSON field names are the
// persisted on-disk shape of the history file; external readers depend on
// them.
type Alert struct {
	ID        int    `json:"id"`
	DeviceID  string `json:"device_id"`
	AlertType string `json:"alert_type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // TimestampLayout
	Image     string `json:"image"`     // filename or PlaceholderImage
}
