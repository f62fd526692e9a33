// Package dashboard serves the operator page for unavailable models.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mihaimyh/goavail/pkg/availability"
)

const maxFormBody = 64 << 10

// Handler renders the controller state and starts refresh/reset actions.
// Actions run detached from the request so the page can show the pair as
// in flight while the remote call is pending.
type Handler struct {
	console    Console
	flash      *FlashNotifier
	translator availability.Translator
	display    availability.DisplayOptions
	logger     availability.Logger
	limiter    *rateLimiter
	reload     time.Duration
	page       *template.Template

	actions sync.WaitGroup
}

// NewHandler creates a dashboard handler with the given configuration
func NewHandler(config Config) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	translator := config.Translator
	if translator == nil {
		translator = availability.DefaultCatalog()
	}
	logger := config.Logger
	if logger == nil {
		logger = &availability.NoopLogger{}
	}
	limit := config.RateLimit
	if limit == 0 {
		limit = defaultRateLimit
	}
	window := config.RateLimitWindow
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	reload := config.AutoRefresh
	if reload <= 0 {
		reload = defaultAutoRefresh
	}

	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	return &Handler{
		console:    config.Console,
		flash:      config.Flash,
		translator: translator,
		display:    config.Display,
		logger:     logger,
		limiter:    newRateLimiter(limit, window),
		reload:     reload,
		page:       page,
	}, nil
}

// Router returns the dashboard routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/", h.handlePage)
	r.Get("/api/state", h.handleState)

	r.Group(func(r chi.Router) {
		r.Use(h.limiter.middleware)
		r.Post("/refresh", h.handleRefresh)
		r.Post("/reset", h.handleReset)
	})
	return r
}

// Wait blocks until every action started by the handler has settled, or ctx ends.
func (h *Handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.actions.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	data := h.buildPage(h.console.Snapshot())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.page.Execute(w, data); err != nil {
		h.logger.Error("Failed to render dashboard", availability.Field{Key: "error", Value: err})
	}
}

type stateResponse struct {
	Models        []availability.UnavailableModel `json:"models"`
	Count         int                             `json:"count"`
	View          availability.View               `json:"view"`
	Loading       bool                            `json:"loading"`
	Resetting     []string                        `json:"resetting"`
	Stale         bool                            `json:"stale"`
	RefreshedAt   *time.Time                      `json:"refreshed_at,omitempty"`
	Notifications []Flash                         `json:"notifications,omitempty"`
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	state := h.console.Snapshot()

	resetting := make([]string, 0, state.Resetting.Len())
	for _, k := range state.Resetting.Keys() {
		resetting = append(resetting, k.String())
	}
	resp := stateResponse{
		Models:    state.Records,
		Count:     len(state.Records),
		View:      state.View(),
		Loading:   state.Loading,
		Resetting: resetting,
		Stale:     state.Stale,
	}
	if !state.RefreshedAt.IsZero() {
		at := state.RefreshedAt
		resp.RefreshedAt = &at
	}
	if h.flash != nil {
		resp.Notifications = h.flash.Recent()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())
	h.start(func() {
		// Failures are already turned into a notification by the controller.
		_ = h.console.Refresh(ctx)
	})
	h.accepted(w, r, map[string]string{"status": "refreshing"})
}

type resetForm struct {
	ModelID  string `json:"model_id"`
	ClientID string `json:"client_id"`
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	form, err := parseResetForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if form.ModelID == "" || form.ClientID == "" {
		writeError(w, http.StatusBadRequest, availability.ErrMissingIdentifier.Error())
		return
	}

	key := availability.Key{ModelID: form.ModelID, ClientID: form.ClientID}
	record, ok := h.console.Lookup(key)
	if !ok {
		writeError(w, http.StatusNotFound, "no unavailability record for "+key.String())
		return
	}
	if h.console.IsResetting(key) {
		writeError(w, http.StatusConflict, availability.ErrResetInFlight.Error())
		return
	}

	ctx := context.WithoutCancel(r.Context())
	h.start(func() {
		err := h.console.Reset(ctx, record)
		if errors.Is(err, availability.ErrResetInFlight) {
			h.logger.Debug("Reset already in flight", availability.Field{Key: "key", Value: key.String()})
		}
	})
	h.accepted(w, r, map[string]string{"status": "resetting", "key": key.String()})
}

func (h *Handler) start(fn func()) {
	h.actions.Add(1)
	go func() {
		defer h.actions.Done()
		fn()
	}()
}

// accepted answers an action request: 202 JSON for API callers, a
// redirect back to the page for form posts.
func (h *Handler) accepted(w http.ResponseWriter, r *http.Request, body interface{}) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusAccepted, body)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseResetForm(w http.ResponseWriter, r *http.Request) (resetForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)

	var form resetForm
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return resetForm{}, fmt.Errorf("invalid payload: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return resetForm{}, fmt.Errorf("invalid form: %w", err)
		}
		form.ModelID = r.PostForm.Get("model_id")
		form.ClientID = r.PostForm.Get("client_id")
	}
	form.ModelID = strings.TrimSpace(form.ModelID)
	form.ClientID = strings.TrimSpace(form.ClientID)
	return form, nil
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// reloadSeconds is the meta refresh interval in whole seconds, at least 1.
func (h *Handler) reloadSeconds() string {
	secs := int(h.reload / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
