// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"atlas/internal/chat"
	"atlas/internal/http/handlers"
	"atlas/internal/http/middleware"
	"atlas/internal/infra"
	"atlas/internal/intel"
	"atlas/internal/modules/conversation"
	"atlas/internal/modules/session"
	"atlas/internal/places"
)

type ServerDeps struct {
	Chat          *chat.Service
	Conversations *conversation.Service
	Sessions      *session.Service
	Engine        *intel.Engine
	Places        *places.Service
	Verifier      infra.TokenVerifier
	Log           *zap.Logger
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(s.deps.Log), middleware.Logging(s.deps.Log))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(s.deps.Verifier))

	chatHandler := handlers.NewChatHandler(s.deps.Chat)
	api.POST("/chat/message", chatHandler.Send)

	convHandler := handlers.NewConversationHandler(s.deps.Conversations, s.deps.Sessions, s.deps.Engine)
	api.GET("/conversations", convHandler.List)
	api.GET("/conversations/:id", convHandler.Get)
	api.PATCH("/conversations/:id", convHandler.Rename)
	api.DELETE("/conversations/:id", convHandler.Delete)
	api.GET("/conversations/:id/analysis", convHandler.Analysis)

	destHandler := handlers.NewDestinationHandler(s.deps.Places)
	api.GET("/destinations/:name/highlights", destHandler.Highlights)

	return r
}
