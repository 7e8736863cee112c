// README: Chat handler; one POST per user message.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"atlas/internal/chat"
	"atlas/internal/http/middleware"
)

const chatTimeout = 30 * time.Second

type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{chat: svc}
}

type sendMessageReq struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

// Send handles POST /api/chat/message. An absent conversation_id starts a
// new conversation.
func (h *ChatHandler) Send(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	var conversationID *uuid.UUID
	if req.ConversationID != "" {
		id, err := uuid.Parse(req.ConversationID)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid conversation id")
			return
		}
		conversationID = &id
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	res, err := h.chat.Send(ctx, middleware.CallerUID(c), conversationID, req.Message)
	if err != nil {
		writeConversationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
