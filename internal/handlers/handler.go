package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"agent-sticker-kiosk/internal/gemini"
	"agent-sticker-kiosk/internal/mailer"
	"agent-sticker-kiosk/internal/session"
	"agent-sticker-kiosk/internal/sticker"
	"agent-sticker-kiosk/internal/submit"
)

type Options struct {
	Gemini       *gemini.Client
	Engine       *sticker.Engine
	Sessions     *session.Store
	Coordinator *submit.Coordinator
	Mailer      *mailer.Mailer // nil when SMTP is not configured
	LocalDir    string
	MaxGenerate int64
	Logger      *slog.Logger
}

type Handler struct {
	gem         *gemini.Client
	engine      *sticker.Engine
	sessions    *session.Store
	coordinator *submit.Coordinator
	mailer      *mailer.Mailer
	localDir    string
	genSem      *semaphore.Weighted
	logger      *slog.Logger
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxGen := opts.MaxGenerate
	if maxGen < 1 {
		maxGen = 4
	}

	return &Handler{
		gem:         opts.Gemini,
		engine:      opts.Engine,
		sessions:    opts.Sessions,
		coordinator: opts.Coordinator,
		mailer:      opts.Mailer,
		localDir:    opts.LocalDir,
		genSem:      semaphore.NewWeighted(maxGen),
		logger:      logger,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", h.handleSessionStart)
		r.Post("/session/{id}/reset", h.handleSessionReset)
		r.Post("/archetype", h.handleArchetype)
		r.Post("/generate", h.handleGenerate)
		r.Post("/sticker", h.handleSticker)
		r.Post("/submit", h.handleSubmit)
		r.Post("/email", h.handleEmail)
	})

	if h.localDir != "" {
		fileServer := http.FileServer(http.Dir(h.localDir))
		r.Handle("/public/*", http.StripPrefix("/public/", fileServer))
	}

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Info("http", "method", r.Method, "path", r.URL.Path, "dur_ms", time.Since(start).Milliseconds())
	})
}

type apiError struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.Start()
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing session id"})
		return
	}
	h.sessions.Reset(id)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
