package registry

import (
	"testing"

	"sitewatch/internal/models"
)

func TestRegistry_Lookups(t *testing.T) {
	reg := New([]models.Device{
		{ID: "DEV001", Name: "Junction Box A", Lat: 18.645917, Lng: 73.792500},
		{ID: "DEV002", Name: "Junction Box B", Lat: 18.650000, Lng: 73.800000},
	})

	if !reg.Contains("DEV001") || !reg.Contains("DEV002") {
		t.Fatalf("registered devices not found")
	}
	if reg.Contains("DEV999") {
		t.Fatalf("unregistered device reported present")
	}

	ids := reg.IDs()
	if len(ids) != 2 || ids[0] != "DEV001" || ids[1] != "DEV002" {
		t.Fatalf("ids = %v", ids)
	}

	all := reg.All()
	if len(all) != 2 || all[0].Name != "Junction Box A" {
		t.Fatalf("all = %+v", all)
	}

	// All returns a copy; callers cannot mutate the registry.
	all[0].ID = "MUTATED"
	if !reg.Contains("DEV001") {
		t.Fatalf("registry mutated through All()")
	}
}
