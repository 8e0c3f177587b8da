package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"sitewatch/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeJPEG = "image/jpeg"
	contentTypeForm = "application/x-www-form-urlencoded"

	respImageReceived   = "Image received"
	respMessageReceived = "Message received"
	respUnsupportedType = "Unsupported Content-Type"

	errStoreImage   = "failed to store image"
	errStoreMessage = "failed to store message"
	errLoadHistory  = "failed to load recent history"

	recentMessageCount = 5
	recentImageCount   = 2
)

// submissionDeviceID reads the optional device_id query parameter, falling
// back to the unknown-device sentinel.
func submissionDeviceID(c *gin.Context) string {
	return c.DefaultQuery("device_id", models.UnknownDevice)
}

// @Summary      Device submission endpoint
// @Description  Dispatches on Content-Type: image/jpeg saves the raw body as a capture, application/x-www-form-urlencoded classifies the message field. Anything else is rejected.
// @Tags         ingest
// @Accept       octet-stream
// @Produce      plain
// @Param        device_id  query  string  false  "Submitting device id"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Failure      500  {object}  map[string]string
// @Router       /old [post]
func (h *Handler) receiveSubmission(c *gin.Context) {
	switch c.ContentType() {
	case contentTypeJPEG:
		h.receiveImage(c)
	case contentTypeForm:
		h.receiveMessage(c)
	default:
		c.String(http.StatusBadRequest, respUnsupportedType)
	}
}

func (h *Handler) receiveImage(c *gin.Context) {
	deviceID := submissionDeviceID(c)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreImage, "image_read_failed", err, "device_id", deviceID)
		return
	}
	if _, err := h.services.Ingest.SubmitImage(c.Request.Context(), deviceID, payload); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreImage, "image_submit_failed", err, "device_id", deviceID)
		return
	}
	c.String(http.StatusOK, respImageReceived)
}

func (h *Handler) receiveMessage(c *gin.Context) {
	deviceID := submissionDeviceID(c)
	message := c.PostForm("message") // empty when absent
	if _, err := h.services.Ingest.SubmitMessage(c.Request.Context(), deviceID, message); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreMessage, "message_submit_failed", err, "device_id", deviceID)
		return
	}
	c.String(http.StatusOK, respMessageReceived)
}

// @Summary      Recent submission history
// @Description  The data the legacy status page showed: newest audit lines and capture filenames.
// @Tags         ingest
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "messages, images"
// @Failure      500  {object}  map[string]string
// @Router       /old [get]
func (h *Handler) getRecentHistory(c *gin.Context) {
	messages, err := h.services.Ingest.RecentMessages(recentMessageCount)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "recent_messages_failed", err)
		return
	}
	images, err := h.services.Ingest.RecentImages(recentImageCount)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadHistory, "recent_images_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"images":   images,
	})
}

// @Summary      Serve a stored capture
// @Tags         ingest
// @Produce      jpeg
// @Param        filename  path  string  true  "Capture filename"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /images/{filename} [get]
func (h *Handler) getImage(c *gin.Context) {
	name := filepath.Base(c.Param("filename"))
	path, err := h.services.Ingest.ImagePath(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.File(path)
}
