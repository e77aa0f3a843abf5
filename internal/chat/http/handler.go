package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resepkita/go-resep-backend/internal/chat/llm"
	"github.com/resepkita/go-resep-backend/internal/chat/service"
	"github.com/resepkita/go-resep-backend/pkg/logger"
)

type Handler struct {
	chat *service.ChatService
}

func NewHandler(chat *service.ChatService) *Handler {
	return &Handler{chat: chat}
}

type chatReq struct {
	Message string         `json:"message"`
	History []service.Turn `json:"history"`
}

func (h *Handler) chatMessage(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), req.Message, req.History)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		case errors.Is(err, llm.ErrNoAPIKey):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "GROQ_API_KEY is not configured"})
		default:
			logger.Sugar.Errorf("chat: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Groq API error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Register attaches the chat route to the given router group.
// The relay is unauthenticated and stateless per request.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.chatMessage)
}
