package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List registered devices
// @Tags         devices
// @Produce      json
// @Success      200  {array}  models.Device
// @Router       /devices [get]
func (h *Handler) getDevices(c *gin.Context) {
	c.JSON(http.StatusOK, h.devices.All())
}
