package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitewatch/internal/models"
	"sitewatch/internal/service"
)

func TestGetDevices(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/devices", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var devices []models.Device
	if err := json.Unmarshal(w.Body.Bytes(), &devices); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(devices) != 1 || devices[0].ID != "DEV001" || devices[0].Lat != 18.645917 {
		t.Fatalf("unexpected devices: %+v", devices)
	}
}

func TestGetAlertsHistory(t *testing.T) {
	al := &mockAlerts{history: []models.Alert{
		{ID: 1, DeviceID: "DEV001", AlertType: models.AlertDoor},
		{ID: 2, DeviceID: "DEV002", AlertType: models.AlertVibration},
	}}
	r := newTestRouter(&service.Service{Alerts: al})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alerts-history", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var alerts []models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(alerts) != 2 || alerts[0].ID != 1 || alerts[1].ID != 2 {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}

func TestGetAlertsHistory_Error(t *testing.T) {
	al := &mockAlerts{historyErr: errNotFoundStub}
	r := newTestRouter(&service.Service{Alerts: al})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alerts-history", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
}

func TestGetDeviceAlerts(t *testing.T) {
	al := &mockAlerts{device: []models.Alert{
		{ID: 3, DeviceID: "DEV001", AlertType: models.AlertImageCaptured},
	}}
	r := newTestRouter(&service.Service{Alerts: al})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/device/DEV001/alerts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if al.lastDevice != "DEV001" {
		t.Fatalf("device filter not passed: %q", al.lastDevice)
	}
	var alerts []models.Alert
	if err := json.Unmarshal(w.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(alerts) != 1 || alerts[0].DeviceID != "DEV001" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
