package repository

import (
	"errors"
	"testing"
	"time"
)

func TestPowerMem_SeedsBothActive(t *testing.T) {
	p := NewPowerMem([]string{"DEV001", "DEV002"})

	for _, id := range []string{"DEV001", "DEV002"} {
		st, err := p.Get(id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if !st.Main || !st.Backup {
			t.Fatalf("%s not seeded both-active: %+v", id, st)
		}
		if st.LastUpdate.IsZero() {
			t.Fatalf("%s missing last update", id)
		}
	}
}

func TestPowerMem_SetReplacesBothAndRefreshesTime(t *testing.T) {
	p := NewPowerMem([]string{"DEV001"})
	before, _ := p.Get("DEV001")

	time.Sleep(10 * time.Millisecond)
	st, err := p.Set("DEV001", false, false)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if st.Main || st.Backup {
		t.Fatalf("set not applied: %+v", st)
	}
	if !st.LastUpdate.After(before.LastUpdate) {
		t.Fatalf("last update not refreshed: %v -> %v", before.LastUpdate, st.LastUpdate)
	}
}

func TestPowerMem_UnknownDevice(t *testing.T) {
	p := NewPowerMem([]string{"DEV001"})

	if _, err := p.Get("DEV999"); !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("get: expected ErrDeviceNotFound, got %v", err)
	}
	if _, err := p.Set("DEV999", true, true); !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("set: expected ErrDeviceNotFound, got %v", err)
	}
}
