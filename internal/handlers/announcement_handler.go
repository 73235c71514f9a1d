package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/services"
	"github.com/SAP-F-2025/student-service/internal/utils"
)

type AnnouncementHandler struct {
	BaseHandler
	service services.AnnouncementService
}

func NewAnnouncementHandler(service services.AnnouncementService, logger utils.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateAnnouncement publishes a new announcement (admin only)
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Success 200 {object} models.Announcement
// @Failure 400 {object} ErrorResponse
// @Router /announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	h.LogRequest(c, "Creating announcement")

	var req models.AnnouncementCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	postedBy, _ := c.Get("user_email")
	email, _ := postedBy.(string)

	announcement, err := h.service.Create(c.Request.Context(), &req, email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// ListAnnouncements returns all announcements, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} models.Announcement
// @Router /announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	h.LogRequest(c, "Listing announcements")

	announcements, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// DeleteAnnouncement removes an announcement (admin only)
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	h.LogRequest(c, "Deleting announcement")

	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Announcement deleted successfully"})
}
