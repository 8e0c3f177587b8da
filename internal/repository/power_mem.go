package repository

import (
	"sync"
	"time"

	"sitewatch/internal/models"
)

// PowerMem holds per-device supply state in memory. Entries exist for every
// registered device from startup and are never deleted; an unknown id is an
// error, not an empty value.
type PowerMem struct {
	mu     sync.RWMutex
	states map[string]models.PowerState
}

// NewPowerMem seeds every known device with both supplies active.
func NewPowerMem(deviceIDs []string) *PowerMem {
	states := make(map[string]models.PowerState, len(deviceIDs))
	now := time.Now()
	for _, id := range deviceIDs {
		states[id] = models.PowerState{Main: true, Backup: true, LastUpdate: now}
	}
	return &PowerMem{states: states}
}

// Get returns the current snapshot for deviceID.
func (p *PowerMem) Get(deviceID string) (models.PowerState, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	st, ok := p.states[deviceID]
	if !ok {
		return models.PowerState{}, ErrDeviceNotFound
	}
	return st, nil
}

// Set overwrites both booleans and the update time in one step; readers never
// observe one boolean changed without the other.
func (p *PowerMem) Set(deviceID string, main, backup bool) (models.PowerState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.states[deviceID]; !ok {
		return models.PowerState{}, ErrDeviceNotFound
	}
	st := models.PowerState{Main: main, Backup: backup, LastUpdate: time.Now()}
	p.states[deviceID] = st
	return st, nil
}
