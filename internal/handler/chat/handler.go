package chat

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/konantech/hr-assistant/backend/internal/ingest/resume"
	"github.com/konantech/hr-assistant/backend/internal/model/policy"
	chatservice "github.com/konantech/hr-assistant/backend/internal/service/chat"
	"github.com/konantech/hr-assistant/backend/internal/service/conversation"
	"github.com/konantech/hr-assistant/backend/internal/store/moodlog"
	"github.com/konantech/hr-assistant/backend/pkg/utils"
)

// maxResumeUpload caps the multipart body we are willing to parse.
const maxResumeUpload = 10 << 20

// Handler exposes the conversational API over REST.
type Handler struct {
	convSvc   *conversation.Service
	chatSvc   *chatservice.Service
	moodStore *moodlog.Store
	policyDoc policy.Document
	resumeMax int
}

// New creates the chat handler.
func New(convSvc *conversation.Service, chatSvc *chatservice.Service, moodStore *moodlog.Store, policyDoc policy.Document, resumeMax int) *Handler {
	return &Handler{
		convSvc:   convSvc,
		chatSvc:   chatSvc,
		moodStore: moodStore,
		policyDoc: policyDoc,
		resumeMax: resumeMax,
	}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}", h.handleGetSession)
	r.Post("/session/{sessionID}/messages", h.handleMessage)
	r.Get("/session/{sessionID}/transcript", h.handleTranscript)
	r.Post("/session/{sessionID}/resume", h.handleResumeUpload)
	r.Get("/moods", h.handleMoods)
	r.Get("/policy", h.handlePolicy)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, session)
}

// handleMessage runs one full conversational turn and returns the reply.
func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		utils.RespondError(w, http.StatusBadRequest, "content is required")
		return
	}

	reply, err := h.convSvc.Respond(r.Context(), sessionID, strings.TrimSpace(payload.Content), nil)
	if err != nil {
		if errors.Is(err, chatservice.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// handleResumeUpload extracts prompt context from an uploaded document.
// Extraction problems are reported as a warning, never as a failure.
func (h *Handler) handleResumeUpload(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	if err := r.ParseMultipartForm(maxResumeUpload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	// Browsers usually declare the part's content type; fall back to the
	// filename extension when the part is untyped.
	declaredType := header.Header.Get("Content-Type")
	if declaredType == "" || declaredType == "application/octet-stream" {
		declaredType = filepath.Ext(header.Filename)
	}

	result := resume.Extract(data, declaredType, h.resumeMax)
	if result.Warning != "" {
		log.Printf("[chat] resume ingestion degraded for session=%s: %s", sessionID, result.Warning)
	}

	if err := h.chatSvc.SetResume(r.Context(), sessionID, result.Excerpt); err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"chars":   len(result.Excerpt),
		"warning": result.Warning,
	})
}

// handleMoods feeds the mood chart on the frontend.
func (h *Handler) handleMoods(w http.ResponseWriter, r *http.Request) {
	entries, err := h.moodStore.Entries()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "could not read mood log")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

func (h *Handler) handlePolicy(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.policyDoc)
}
