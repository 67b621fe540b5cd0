package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/konantech/hr-assistant/backend/internal/handler/chat"
	"github.com/konantech/hr-assistant/backend/internal/handler/stream"
	"github.com/konantech/hr-assistant/backend/internal/handler/ws"
	middlewarePkg "github.com/konantech/hr-assistant/backend/internal/middleware"
	"github.com/konantech/hr-assistant/backend/internal/model/policy"
	chatservice "github.com/konantech/hr-assistant/backend/internal/service/chat"
	"github.com/konantech/hr-assistant/backend/internal/service/conversation"
	"github.com/konantech/hr-assistant/backend/internal/store/moodlog"
	"github.com/konantech/hr-assistant/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(convSvc *conversation.Service, chatSvc *chatservice.Service, moodStore *moodlog.Store, policyDoc policy.Document, resumeMax int) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(convSvc, chatSvc, moodStore, policyDoc, resumeMax)
	streamHandler := stream.New(convSvc)
	wsHandler := ws.New(convSvc)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
