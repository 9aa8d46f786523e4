package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/common/logger"
	"academyhub.app/server/internal/http/dto"
	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

const defaultPingInterval = 25 * time.Second

type ChatHandler struct {
	chatService  service.ChatService
	pingInterval time.Duration
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService, pingInterval: defaultPingInterval}
}

// WithPingInterval overrides the SSE keepalive interval.
func (h *ChatHandler) WithPingInterval(d time.Duration) *ChatHandler {
	h.pingInterval = d
	return h
}

func (h *ChatHandler) OpenRoom(c *gin.Context) {
	var req dto.OpenRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	room, err := h.chatService.OpenRoom(c.Request.Context(), currentUser(c).ID, req.AcademyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *ChatHandler) ListRooms(c *gin.Context) {
	rooms, err := h.chatService.ListRooms(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rooms == nil {
		rooms = []model.ChatRoom{}
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *ChatHandler) Messages(c *gin.Context) {
	roomID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}
	before, err := queryInt64Ptr(c, "before")
	if err != nil {
		badRequest(c, err)
		return
	}
	limit, err := queryInt32(c, "limit")
	if err != nil {
		badRequest(c, err)
		return
	}

	messages, err := h.chatService.Messages(c.Request.Context(), currentUser(c).ID, roomID, before, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) Send(c *gin.Context) {
	roomID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.chatService.Send(c.Request.Context(), currentUser(c).ID, roomID, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	roomID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := h.chatService.MarkRead(c.Request.Context(), currentUser(c).ID, roomID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Events streams new room messages as server-sent events until the client
// goes away.
func (h *ChatHandler) Events(c *gin.Context) {
	roomID, err := pathID(c, "id")
	if err != nil {
		badRequest(c, err)
		return
	}

	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RoomID: &roomID})

	sub, err := h.chatService.Subscribe(ctx, currentUser(c).ID, roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() {
		if err := sub.Close(); err != nil {
			slog.WarnContext(ctx, "closing chat subscription", "error", err)
		}
	}()

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	setSSEHeaders(c.Writer)
	c.Status(http.StatusOK)

	sseWrite(c.Writer, "ping", "ready")
	flusher.Flush()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sseWrite(c.Writer, "ping", time.Now().UTC().Format(time.RFC3339Nano))
			flusher.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}
			sseWrite(c.Writer, event.Type, event.Message)
			flusher.Flush()
		}
	}
}
