package handlers

import (
	"errors"
	"net/http"

	"sitewatch/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"

	errDeviceNotFound  = "Device not found"
	errUpdatePower     = "failed to update power status"
	errSimulatePower   = "failed to simulate power change"
	errInvalidBodyPref = "invalid body: "
)

// Request DTO for device power reports. Booleans are pointers so an explicit
// false still satisfies required-ness.
type powerUpdateRequest struct {
	DeviceID     string `json:"device_id" binding:"required"`
	MainSupply   *bool  `json:"main_supply" binding:"required"`
	BackupSupply *bool  `json:"backup_supply" binding:"required"`
}

// Request DTO for triggering a simulated fluctuation.
type simulateRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}

// @Summary      Power status for one device
// @Tags         power
// @Produce      json
// @Param        device_id  path  string  true  "Device id"
// @Success      200  {object}  models.PowerStatus
// @Failure      404  {object}  map[string]string
// @Router       /device/{device_id}/power-status [get]
func (h *Handler) getPowerStatus(c *gin.Context) {
	deviceID := c.Param("device_id")
	status, err := h.services.Power.Status(c.Request.Context(), deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errDeviceNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdatePower, "power_status_failed", err, "device_id", deviceID)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary      Report device power state
// @Description  Overwrites both supply booleans for the device in one step.
// @Tags         power
// @Accept       json
// @Produce      json
// @Param        body  body  powerUpdateRequest  true  "Power report"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /update-power-status [post]
func (h *Handler) updatePowerStatus(c *gin.Context) {
	var req powerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	err := h.services.Power.Update(c.Request.Context(), req.DeviceID, *req.MainSupply, *req.BackupSupply)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errDeviceNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdatePower, "power_update_failed", err, "device_id", req.DeviceID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
}

// @Summary      Simulate a power fluctuation
// @Description  Demo facility: draws a weighted random outcome and applies it
// @Tags         power
// @Accept       json
// @Produce      json
// @Param        body  body  simulateRequest  true  "Target device"
// @Success      200  {object}  map[string]interface{}  "status, power_status"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /simulate-power-change [post]
func (h *Handler) simulatePowerChange(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	status, err := h.services.Simulator.Perturb(c.Request.Context(), req.DeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errDeviceNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errSimulatePower, "simulate_power_failed", err, "device_id", req.DeviceID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       statusSuccess,
		"power_status": status,
	})
}
