package api

import (
	"net/http"
	"strconv"

	reqdto "coachdesk/internal/handler/dto/request"
	resdto "coachdesk/internal/handler/dto/response"
	"coachdesk/internal/handler/httperr"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/commands"
	"coachdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary Job recommendation event
// @Description Queue a job recommendation for the recipient's next digest
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.JobRecommendationRequest true "Job recommendation"
// @Success 202 {object} resdto.IntakeResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/job-recommendations [post]
func (h *NotificationHandler) JobRecommendation(c *gin.Context) {
	var req reqdto.JobRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.cmds.NotifyJobRecommendation(c.Request.Context(), req.RecipientID, req.JobTitle, req.CompanyName)
	c.JSON(http.StatusAccepted, resdto.FromIntakeResult(res))
}

// @Summary File upload event
// @Description Queue a shared-resource notice for the recipient's next digest
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.FileUploadRequest true "File upload"
// @Success 202 {object} resdto.IntakeResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/file-uploads [post]
func (h *NotificationHandler) FileUpload(c *gin.Context) {
	var req reqdto.FileUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.cmds.NotifyFileUpload(c.Request.Context(), req.RecipientID, req.FileName)
	c.JSON(http.StatusAccepted, resdto.FromIntakeResult(res))
}

// @Summary Message event
// @Description Queue a mentor message for the recipient's next digest
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.MessageRequest true "Message"
// @Success 202 {object} resdto.IntakeResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/messages [post]
func (h *NotificationHandler) Message(c *gin.Context) {
	var req reqdto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.cmds.NotifyMessage(c.Request.Context(), req.RecipientID, req.Message)
	c.JSON(http.StatusAccepted, resdto.FromIntakeResult(res))
}

// @Summary Task assignment event
// @Description Queue one task assignment event per recipient
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.TaskAssignmentRequest true "Task assignment"
// @Success 202 {object} resdto.IntakeResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/task-assignments [post]
func (h *NotificationHandler) TaskAssignment(c *gin.Context) {
	var req reqdto.TaskAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res := h.cmds.NotifyTaskAssignment(c.Request.Context(), req.RecipientIDs, req.TaskTitle, req.CountOrDefault())
	c.JSON(http.StatusAccepted, resdto.FromIntakeResult(res))
}

// @Summary Flush all digests
// @Description Send every pending digest now
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.FlushResponse
// @Router /notifications/flush [post]
func (h *NotificationHandler) FlushAll(c *gin.Context) {
	n := h.cmds.FlushAllNow(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FlushResponse{Flushed: n})
}

// @Summary Flush one digest
// @Description Send the recipient's pending digest now
// @Tags notifications
// @Produce json
// @Param id path string true "Recipient ID"
// @Success 200 {object} resdto.FlushResponse
// @Router /notifications/recipients/{id}/flush [post]
func (h *NotificationHandler) FlushRecipient(c *gin.Context) {
	n := h.cmds.FlushRecipient(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, resdto.FlushResponse{Flushed: n})
}

// @Summary Pending status
// @Description Snapshot of pending queues and delivery counters
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.StatusResponse
// @Router /notifications/status [get]
func (h *NotificationHandler) Status(c *gin.Context) {
	view := h.q.GetStatusSnapshot(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromStatusView(view))
}

// @Summary Get channel
// @Description Read the outbound email channel
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.ChannelResponse
// @Failure 404 {object} map[string]string
// @Router /notifications/channel [get]
func (h *NotificationHandler) GetChannel(c *gin.Context) {
	view, err := h.q.GetChannel(c.Request.Context())
	if err != nil {
		if errs.Is(err, queries.ErrChannelNotConfigured) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Channel not configured", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChannelView(view))
}

// @Summary Configure channel
// @Description Replace the outbound email channel
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.ConfigureChannelRequest true "Channel"
// @Success 200 {object} resdto.ChannelResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/channel [put]
func (h *NotificationHandler) ConfigureChannel(c *gin.Context) {
	var req reqdto.ConfigureChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ConfigureChannel(c.Request.Context(), req.ToInput()); err != nil {
		if errs.Is(err, commands.ErrInvalidChannel) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid channel configuration", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	view, err := h.q.GetChannel(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load channel", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChannelView(view))
}

// @Summary List deliveries
// @Description Recent digest delivery attempts for a recipient, newest first
// @Tags notifications
// @Produce json
// @Param id path string true "Recipient ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]interface{} "deliveries and optional next_cursor"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /notifications/recipients/{id}/deliveries [get]
func (h *NotificationHandler) ListDeliveries(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListDeliveries(c.Request.Context(), c.Param("id"), cursor, limit)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		case errs.Is(err, queries.ErrRecipientRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid recipient id", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	resp := gin.H{"deliveries": resdto.FromDeliveryList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}
