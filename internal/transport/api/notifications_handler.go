package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-market/internal/domain"
)

type NotificationsHandler struct {
	notificationService NotificationServicer
}

func NewNotificationsHandler(notificationService NotificationServicer) *NotificationsHandler {
	return &NotificationsHandler{
		notificationService: notificationService,
	}
}

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func newNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// Index GET RouteGroup + NotificationsRoute. Уведомления текущего юзера, свежие первыми.
func (h *NotificationsHandler) Index(c *gin.Context) {
	userID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notifications, err := h.notificationService.GetByUserID(ctx, userID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		response[i] = newNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, response)
}

// ReadAll POST RouteGroup + ReadAllRoute. Помечает все уведомления юзера прочитанными.
func (h *NotificationsHandler) ReadAll(c *gin.Context) {
	userID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.notificationService.MarkAllRead(ctx, userID); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReadOne POST RouteGroup + ReadOneRoute. Помечает одно уведомление прочитанным.
// Чужое уведомление пометить нельзя, репозиторий вернет ErrRecordNotFound.
func (h *NotificationsHandler) ReadOne(c *gin.Context) {
	userID := getUserIDFromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notification, err := h.notificationService.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newNotificationResponse(notification))
}
