package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/validate"
	"github.com/dmitrymomot/validate/async"
	"github.com/dmitrymomot/validate/i18n"
	"github.com/dmitrymomot/validate/pkg/logger"
)

// Handler serves the commerce validation API.
type Handler struct {
	cfg        Config
	users      Users
	catalog    Catalog
	translator *i18n.Translator
	log        *slog.Logger
	health     []func(context.Context) error
}

// NewHandler assembles the handler. The translator may be nil, in
// which case reports are served untranslated.
func NewHandler(cfg Config, users Users, catalog Catalog, translator *i18n.Translator, log *slog.Logger, health ...func(context.Context) error) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		cfg:        cfg,
		users:      users,
		catalog:    catalog,
		translator: translator,
		log:        log,
		health:     health,
	}
}

// Router mounts the commerce endpoints.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if h.translator != nil {
		r.Use(i18n.Middleware(i18n.DefaultExtractor(h.translator)))
	}

	r.Post("/register", h.register)
	r.Post("/products", h.createProduct)
	r.Post("/orders", h.createOrder)
	r.Get("/healthz", h.healthz)
	return r
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	payload, err := h.decode(w, r)
	if err != nil {
		return
	}

	report, err := h.check(r.Context(), payload, RegistrationRules(),
		async.Field("email", EmailIsFree(h.users)),
	)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !report.Valid {
		h.respond(w, r, http.StatusUnprocessableEntity, h.localize(r, report))
		return
	}

	user, err := h.users.CreateUser(r.Context(),
		stringField(payload, "fullName"),
		stringField(payload, "email"),
		stringField(payload, "password"),
	)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			report := validate.Report{
				Message: "validation failed",
				Errors: validate.ErrorTree{
					"email": &validate.FieldError{Violations: []string{ErrEmailTaken.Error()}},
				},
			}
			h.respond(w, r, http.StatusUnprocessableEntity, h.localize(r, report))
			return
		}
		h.fail(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "user registered", logger.Component("commerce"))
	h.respond(w, r, http.StatusCreated, map[string]any{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	payload, err := h.decode(w, r)
	if err != nil {
		return
	}

	report, err := h.check(r.Context(), payload, ProductRules(),
		async.Field("sku", SKUIsFree(h.catalog)),
		async.Field("name", NameIsAllowed(h.catalog)),
	)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !report.Valid {
		h.respond(w, r, http.StatusUnprocessableEntity, h.localize(r, report))
		return
	}

	sku := stringField(payload, "sku")
	if err := h.catalog.AddSKU(r.Context(), sku); err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "product created", logger.Component("commerce"))
	h.respond(w, r, http.StatusCreated, map[string]any{"sku": sku})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := h.decode(w, r)
	if err != nil {
		return
	}

	report, err := h.check(r.Context(), payload, OrderRules())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !report.Valid {
		h.respond(w, r, http.StatusUnprocessableEntity, h.localize(r, report))
		return
	}

	h.log.InfoContext(r.Context(), "order accepted", logger.Component("commerce"))
	h.respond(w, r, http.StatusCreated, map[string]any{"id": uuid.New()})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	for _, check := range h.health {
		if err := check(r.Context()); err != nil {
			h.log.ErrorContext(r.Context(), "healthcheck failed", logger.Error(err))
			h.respondError(w, r, http.StatusServiceUnavailable, "unhealthy")
			return
		}
	}
	h.respond(w, r, http.StatusOK, map[string]any{"status": "ok"})
}

// check runs the rule-set and the external checks against the payload
// and folds both findings into one report. Configuration errors and
// infrastructure failures come back as the error.
func (h *Handler) check(ctx context.Context, payload map[string]any, set validate.Set, checks ...async.FieldCheck) (validate.Report, error) {
	tree, err := validate.Validate(payload, payload, set)
	if err != nil {
		return validate.Report{}, err
	}

	if len(checks) > 0 {
		external, err := async.RunTimeout(ctx, h.cfg.CheckTimeout, payload, checks...)
		if err != nil {
			return validate.Report{}, err
		}
		tree = validate.Merge(tree, external)
	}

	if len(tree) > 0 {
		return validate.Report{Message: "validation failed", Errors: tree}, nil
	}
	return validate.Report{Valid: true}, nil
}

// localize translates the report for the request language when a
// translator is configured.
func (h *Handler) localize(r *http.Request, report validate.Report) validate.Report {
	if h.translator == nil || len(report.Errors) == 0 {
		return report
	}

	lang := i18n.GetLocale(r.Context())
	report.Errors = h.translator.TranslateTree(lang, report.Errors)
	if report.Message != "" {
		report.Message = h.translator.T(lang, report.Message)
	}
	return report
}

// decode reads a JSON object body, requiring an application/json
// content type and bounding the body size. On failure it writes the
// error response itself and returns a non-nil error.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	if mediaType != "application/json" {
		h.respondError(w, r, http.StatusUnsupportedMediaType, "expected application/json")
		return nil, ErrUnsupportedMedia
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.cfg.MaxBodyBytes+1))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "failed to read request body")
		return nil, err
	}
	if int64(len(body)) > h.cfg.MaxBodyBytes {
		h.respondError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		return nil, ErrBodyTooLarge
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "request body must be a JSON object")
		return nil, err
	}
	return payload, nil
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.respond(w, r, status, map[string]any{"error": msg})
}

// fail maps non-violation errors onto status codes. Rule-set
// configuration errors are programmer mistakes and stay 500s.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))

	if errors.Is(err, async.ErrTimeout) {
		h.respondError(w, r, http.StatusGatewayTimeout, "validation timed out")
		return
	}
	h.respondError(w, r, http.StatusInternalServerError, "internal error")
}

func stringField(payload map[string]any, name string) string {
	s, _ := payload[name].(string)
	return s
}
