package http

import (
	"context"
	"net/http"

	"mob-social/pkg/clock"
	"mob-social/pkg/jwt"
	"mob-social/pkg/logger"
	"mob-social/services/social/internal/usecase"
	"mob-social/services/social/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	redisClient         *redis.Client
	jwtService          *jwt.Service
	clock               clock.Clock
	logger              *logger.Logger
}

func NewNotificationHandler(
	notificationUseCase usecase.NotificationUseCase,
	redisClient *redis.Client,
	jwtService *jwt.Service,
	clk clock.Clock,
	logger *logger.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		redisClient:         redisClient,
		jwtService:          jwtService,
		clock:               clk,
		logger:              logger,
	}
}

// GetNotifications godoc
// @Summary      Get user notifications
// @Description  Published notifications of the authenticated user, newest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Number of notifications to return (max 100)"
// @Param        offset  query  int  false  "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	limit, offset := pagination(c, 50)
	now := h.clock.Now()

	notifications, err := h.notificationUseCase.GetPublished(userID, now, limit, offset)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get notifications")
		return
	}
	total, err := h.notificationUseCase.CountPublished(userID, now)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get notifications")
		return
	}
	unread, err := h.notificationUseCase.CountUnread(userID, now)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get notifications")
		return
	}

	views := make([]view.NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, view.ProjectNotification(n))
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": views,
		"count":         len(views),
		"total":         total,
		"unread":        unread,
		"offset":        offset,
	})
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Notification ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.notificationUseCase.MarkRead(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to mark notification read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead godoc
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /notifications/read [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	updated, err := h.notificationUseCase.MarkAllRead(userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to mark notifications read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked as read", "updated": updated})
}

// HandleWebSocket streams new notifications. Browsers cannot set headers on a
// WebSocket handshake, so the token may also come from ?token=.
func (h *NotificationHandler) HandleWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")

	if userID == "" {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		claims, err := h.jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID = claims.UserID
	}

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	h.logger.Info("WebSocket connected for user %s", userID)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pubsub := h.redisClient.Subscribe(ctx, usecase.NotificationChannel(userID))
	defer pubsub.Close()

	redisChannel := pubsub.Channel()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-redisChannel:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
					h.logger.Error("Failed to write WebSocket message: %v", err)
					cancel()
					return
				}
			}
		}
	}()

	for {
		messageType, _, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("WebSocket read error: %v", err)
			}
			break
		}
		if messageType == websocket.CloseMessage {
			break
		}
	}

	h.logger.Info("WebSocket disconnected for user %s", userID)
}
