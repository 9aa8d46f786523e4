package router

import (
	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/handler"
)

func ChatRouter(rg *gin.RouterGroup, h *handler.ChatHandler) {
	rg.POST("/rooms", h.OpenRoom)
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:id/messages", h.Messages)
	rg.POST("/rooms/:id/messages", h.Send)
	rg.POST("/rooms/:id/read", h.MarkRead)
	rg.GET("/rooms/:id/events", h.Events)
}
