package registry

import "sitewatch/internal/models"

// Registry is the immutable set of known devices. Built once at startup from
// configuration; lookups are read-only, so no locking is needed.
type Registry struct {
	devices []models.Device
	byID    map[string]models.Device
}

// New builds a registry from the configured device list.
func New(devices []models.Device) *Registry {
	byID := make(map[string]models.Device, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
	}
	return &Registry{devices: devices, byID: byID}
}

// All returns the devices in configuration order.
func (r *Registry) All() []models.Device {
	out := make([]models.Device, len(r.devices))
	copy(out, r.devices)
	return out
}

// IDs returns the device identifiers in configuration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.devices))
	for i, d := range r.devices {
		ids[i] = d.ID
	}
	return ids
}

// Contains reports whether id names a registered device.
func (r *Registry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}
