package service

import (
	"context"
	"errors"
	"testing"

	"sitewatch/internal/repository"
)

func TestClassifySupply_AllFourStates(t *testing.T) {
	cases := []struct {
		main, backup bool
		wantLabel    string
		wantClass    string
	}{
		{true, true, "Normal - Both supplies active", SeveritySuccess},
		{false, true, "Running on BACKUP power", SeverityWarning},
		{true, false, "Main supply active, backup offline", SeverityInfo},
		{false, false, "No Power Available - CRITICAL", SeverityDanger},
	}
	for _, tc := range cases {
		label, class := classifySupply(tc.main, tc.backup)
		if label != tc.wantLabel || class != tc.wantClass {
			t.Fatalf("classifySupply(%v, %v) = (%q, %q), want (%q, %q)",
				tc.main, tc.backup, label, class, tc.wantLabel, tc.wantClass)
		}
	}
}

func TestPowerService_UpdateThenStatus(t *testing.T) {
	svc := NewPowerService(repository.NewPowerMem([]string{"DEV001"}))
	ctx := context.Background()

	if err := svc.Update(ctx, "DEV001", false, true); err != nil {
		t.Fatalf("update: %v", err)
	}
	st, err := svc.Status(ctx, "DEV001")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.State != "Running on BACKUP power" || st.StateClass != SeverityWarning {
		t.Fatalf("unexpected classification: %+v", st)
	}
	if st.MainSupply != "OFF" || st.BackupSupply != "ON" {
		t.Fatalf("unexpected supply rendering: %+v", st)
	}
	if st.LastUpdate == "" {
		t.Fatalf("expected formatted last_update, got empty")
	}
}

func TestPowerService_SeededBothActive(t *testing.T) {
	svc := NewPowerService(repository.NewPowerMem([]string{"DEV001"}))

	st, err := svc.Status(context.Background(), "DEV001")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.StateClass != SeveritySuccess {
		t.Fatalf("fresh device should be both-active, got %+v", st)
	}
}

func TestPowerService_UnknownDevice(t *testing.T) {
	svc := NewPowerService(repository.NewPowerMem([]string{"DEV001"}))
	ctx := context.Background()

	if _, err := svc.Status(ctx, "DEV999"); !errors.Is(err, repository.ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	if err := svc.Update(ctx, "DEV999", true, true); !errors.Is(err, repository.ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
}
