// README: Conversation handlers for list/get/rename/delete and analysis.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"atlas/internal/http/middleware"
	"atlas/internal/intel"
	"atlas/internal/modules/conversation"
	"atlas/internal/modules/session"
)

type ConversationHandler struct {
	conversations *conversation.Service
	sessions      *session.Service
	engine        *intel.Engine
}

func NewConversationHandler(conversations *conversation.Service, sessions *session.Service, engine *intel.Engine) *ConversationHandler {
	return &ConversationHandler{
		conversations: conversations,
		sessions:      sessions,
		engine:        engine,
	}
}

func (h *ConversationHandler) List(c *gin.Context) {
	summaries, err := h.conversations.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeConversationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"conversations": summaries})
}

func (h *ConversationHandler) Get(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}
	conv, err := h.conversations.Get(c.Request.Context(), id, middleware.CallerUID(c))
	if err != nil {
		writeConversationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, conv)
}

type renameReq struct {
	Title string `json:"title"`
}

func (h *ConversationHandler) Rename(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}
	var req renameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(c, http.StatusBadRequest, "missing title")
		return
	}
	if err := h.conversations.Rename(c.Request.Context(), id, middleware.CallerUID(c), req.Title); err != nil {
		writeConversationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"title": req.Title})
}

// Delete soft-deletes the conversation and drops its session state.
func (h *ConversationHandler) Delete(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}
	if err := h.conversations.Delete(c.Request.Context(), id, middleware.CallerUID(c)); err != nil {
		writeConversationError(c, err)
		return
	}
	h.sessions.Forget(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// Analysis handles GET /api/conversations/:id/analysis; it reruns the full
// analysis pipeline over the stored history.
func (h *ConversationHandler) Analysis(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}
	conv, err := h.conversations.Get(c.Request.Context(), id, middleware.CallerUID(c))
	if err != nil {
		writeConversationError(c, err)
		return
	}

	insights := h.engine.Analyze(c.Request.Context(), conv.Messages, conv.Preferences)
	writeJSON(c, http.StatusOK, map[string]any{
		"conversation_id": conv.ID,
		"insights":        insights,
		"preferences":     conv.Preferences,
		"recommendations": h.engine.Recommendations(conv.Preferences, insights, len(conv.Messages)),
	})
}

func conversationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid conversation id")
		return uuid.Nil, false
	}
	return id, true
}
