package handlers

import (
	"context"
	"errors"
	"time"

	"sitewatch/internal/models"
	"sitewatch/internal/registry"
	"sitewatch/internal/service"

	"github.com/gin-gonic/gin"
)

var errNotFoundStub = errors.New("not found")

// ---- Service Mocks ----

type mockIngest struct {
	imageAlert   models.Alert
	imageErr     error
	messageAlert models.Alert
	messageErr   error
	messages     []string
	messagesErr  error
	images       []string
	imagesErr    error
	imagePath    string
	imagePathErr error

	lastImageDevice   string
	lastImagePayload  []byte
	lastMessageDevice string
	lastMessage       string
	lastImageName     string
	imageCalls        int
	messageCalls      int
}

func (m *mockIngest) SubmitImage(ctx context.Context, deviceID string, payload []byte) (models.Alert, error) {
	m.imageCalls++
	m.lastImageDevice = deviceID
	m.lastImagePayload = payload
	return m.imageAlert, m.imageErr
}
func (m *mockIngest) SubmitMessage(ctx context.Context, deviceID, message string) (models.Alert, error) {
	m.messageCalls++
	m.lastMessageDevice = deviceID
	m.lastMessage = message
	return m.messageAlert, m.messageErr
}
func (m *mockIngest) RecentMessages(n int) ([]string, error) { return m.messages, m.messagesErr }
func (m *mockIngest) RecentImages(n int) ([]string, error)   { return m.images, m.imagesErr }
func (m *mockIngest) ImagePath(name string) (string, error) {
	m.lastImageName = name
	return m.imagePath, m.imagePathErr
}

type mockPower struct {
	status    models.PowerStatus
	statusErr error
	updateErr error

	lastDevice string
	lastMain   bool
	lastBackup bool
	updates    int
}

func (m *mockPower) Status(ctx context.Context, deviceID string) (models.PowerStatus, error) {
	m.lastDevice = deviceID
	return m.status, m.statusErr
}
func (m *mockPower) Update(ctx context.Context, deviceID string, main, backup bool) error {
	m.updates++
	m.lastDevice = deviceID
	m.lastMain = main
	m.lastBackup = backup
	return m.updateErr
}

type mockAlerts struct {
	history    []models.Alert
	historyErr error
	device     []models.Alert
	deviceErr  error
	lastDevice string
}

func (m *mockAlerts) History(ctx context.Context) ([]models.Alert, error) {
	return m.history, m.historyErr
}
func (m *mockAlerts) ForDevice(ctx context.Context, deviceID string) ([]models.Alert, error) {
	m.lastDevice = deviceID
	return m.device, m.deviceErr
}

type mockSimulator struct {
	status     models.PowerStatus
	err        error
	lastDevice string
	perturbs   int
}

func (m *mockSimulator) Perturb(ctx context.Context, deviceID string) (models.PowerStatus, error) {
	m.perturbs++
	m.lastDevice = deviceID
	return m.status, m.err
}
func (m *mockSimulator) Run(ctx context.Context, tick time.Duration) {}

// ---- Shared Test Helpers ----

var testDevices = []models.Device{
	{ID: "DEV001", Name: "Junction Box A", Lat: 18.645917, Lng: 73.792500},
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, registry.New(testDevices), nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
