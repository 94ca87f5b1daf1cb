package message

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"classifieds/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // tighten for prod
}

// WSEvent is a real-time event pushed to clients
type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes wires messaging under the session-protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/message", h.Send)
	protected.GET("/conversation/:peer_id", h.Conversation)
	protected.PUT("/conversation/:peer_id/read", h.MarkRead)
	protected.GET("/message/unread-count", h.UnreadCount)
	protected.GET("/ws", h.WebSocket)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	senderID := c.GetString("principal_id")
	msg, err := h.service.Send(c.Request.Context(), senderID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfMessage):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cannot message yourself")
		case errors.Is(err, ErrUnknownReceiver):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Receiver not found")
		default:
			response.Error(c, http.StatusInternalServerError, "MESSAGE_FAILED", "Failed to send message")
		}
		return
	}

	h.hub.Broadcast(msg.SenderID, msg.ReceiverID, WSEvent{Type: "message", Payload: msg})

	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) Conversation(c *gin.Context) {
	principalID := c.GetString("principal_id")
	peerID := c.Param("peer_id")

	msgs, err := h.service.Conversation(c.Request.Context(), principalID, peerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch conversation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

func (h *Handler) MarkRead(c *gin.Context) {
	principalID := c.GetString("principal_id")
	peerID := c.Param("peer_id")

	updated, err := h.service.MarkRead(c.Request.Context(), principalID, peerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark messages read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	principalID := c.GetString("principal_id")

	count, err := h.service.UnreadCount(c.Request.Context(), principalID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to count unread messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread": count})
}

// WebSocket upgrades the connection and parks it in the hub until the client
// disconnects. Events are push-only, inbound frames are drained and ignored.
func (h *Handler) WebSocket(c *gin.Context) {
	principalID := c.GetString("principal_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(principalID, conn)
	defer h.hub.Unregister(principalID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
