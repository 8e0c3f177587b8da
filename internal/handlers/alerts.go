package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errLoadAlerts = "failed to load alerts"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Full alert history
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   models.Alert
// @Failure      500  {object}  map[string]string
// @Router       /alerts-history [get]
func (h *Handler) getAlertsHistory(c *gin.Context) {
	alerts, err := h.services.Alerts.History(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadAlerts, "alerts_history_failed", err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary      Alerts for one device
// @Tags         alerts
// @Produce      json
// @Param        device_id  path  string  true  "Device id"
// @Success      200  {array}   models.Alert
// @Failure      500  {object}  map[string]string
// @Router       /device/{device_id}/alerts [get]
func (h *Handler) getDeviceAlerts(c *gin.Context) {
	deviceID := c.Param("device_id")
	alerts, err := h.services.Alerts.ForDevice(c.Request.Context(), deviceID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadAlerts, "device_alerts_failed", err, "device_id", deviceID)
		return
	}
	c.JSON(http.StatusOK, alerts)
}
