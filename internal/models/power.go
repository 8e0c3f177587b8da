package models

import "time"

// PowerState is the raw per-device supply snapshot. Both booleans are always
// written together with LastUpdate; a partial update is never observable.
type PowerState struct {
	Main       bool
	Backup     bool
	LastUpdate time.Time
}

// PowerStatus is the classified, client-facing view of a PowerState.
type PowerStatus struct {
	DeviceID     string `json:"device_id"`
	MainSupply   string `json:"main_supply"`   // "ON" | "OFF"
	BackupSupply string `json:"backup_supply"` // "ON" | "OFF"
	State        string `json:"state"`
	StateClass   string `json:"state_class"` // success | warning | info | danger
	LastUpdate   string `json:"last_update"` // TimestampLayout
}
