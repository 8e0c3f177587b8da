package handlers

import (
	"sitewatch/internal/logger"
	"sitewatch/internal/registry"
	"sitewatch/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, the device registry and logging.
type Handler struct {
	services *service.Service
	devices  *registry.Registry
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, devices *registry.Registry, log *logger.Logger) *Handler {
	return &Handler{services: services, devices: devices, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Dashboard read side
	router.GET("/devices", h.getDevices)
	router.GET("/alerts-history", h.getAlertsHistory)
	device := router.Group("/device/:device_id")
	{
		device.GET("/alerts", h.getDeviceAlerts)
		device.GET("/power-status", h.getPowerStatus)
	}

	// Power mutations
	router.POST("/update-power-status", h.updatePowerStatus)
	router.POST("/simulate-power-change", h.simulatePowerChange)

	// Legacy device ingestion endpoint (ESP32 firmware posts here)
	router.POST("/old", h.receiveSubmission)
	router.GET("/old", h.getRecentHistory)
	router.GET("/images/:filename", h.getImage)

	// Live alert feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}
