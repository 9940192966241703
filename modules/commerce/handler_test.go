package commerce_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/validate/i18n"
	"github.com/dmitrymomot/validate/modules/commerce"
)

func testConfig() commerce.Config {
	return commerce.Config{
		CheckTimeout: time.Second,
		MaxBodyBytes: 1 << 20,
		BcryptCost:   bcrypt.MinCost,
	}
}

func postJSON(t *testing.T, h http.Handler, path string, payload map[string]any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// fieldErrors digs violation messages out of a decoded report body by
// dotted path.
func fieldErrors(t *testing.T, body map[string]any, path string) []any {
	t.Helper()
	node, ok := body["errors"].(map[string]any)
	require.True(t, ok, "report has no errors object")

	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		node, ok = node[part].(map[string]any)
		require.True(t, ok, "no nested errors at %q", part)
	}
	msgs, ok := node[parts[len(parts)-1]].([]any)
	require.True(t, ok, "no violations at %q", path)
	return msgs
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates a user from a valid payload", func(t *testing.T) {
		users := &fakeUsers{}
		h := commerce.NewHandler(testConfig(), users, &fakeCatalog{}, nil, nil)

		rec := postJSON(t, h.Router(), "/register", validRegistration(), nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "jane@example.com", body["email"])
		require.Len(t, users.created, 1)
		assert.Equal(t, "Jane Smith", users.created[0].FullName)
	})

	t.Run("reports rule and check findings together", func(t *testing.T) {
		users := &fakeUsers{taken: map[string]bool{"jane@example.com": true}}
		h := commerce.NewHandler(testConfig(), users, &fakeCatalog{}, nil, nil)

		payload := validRegistration()
		payload["password"] = "short"
		payload["confirmPassword"] = "short"
		rec := postJSON(t, h.Router(), "/register", payload, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "validation failed", body["message"])
		assert.Contains(t, fieldErrors(t, body, "email"), "email is already registered")
		assert.NotEmpty(t, fieldErrors(t, body, "password"))
		assert.Empty(t, users.created)
	})

	t.Run("reports a duplicate race on insert", func(t *testing.T) {
		users := &fakeUsers{createErr: commerce.ErrEmailTaken}
		h := commerce.NewHandler(testConfig(), users, &fakeCatalog{}, nil, nil)

		rec := postJSON(t, h.Router(), "/register", validRegistration(), nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, []any{"email is already registered"}, fieldErrors(t, body, "email"))
	})

	t.Run("fails closed when the user store is down", func(t *testing.T) {
		users := &fakeUsers{takenErr: errors.New("db down")}
		h := commerce.NewHandler(testConfig(), users, &fakeCatalog{}, nil, nil)

		rec := postJSON(t, h.Router(), "/register", validRegistration(), nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decodeBody(t, rec)["error"])
	})

	t.Run("times out checks that never return", func(t *testing.T) {
		cfg := testConfig()
		cfg.CheckTimeout = 25 * time.Millisecond
		users := &fakeUsers{delay: 300 * time.Millisecond}
		h := commerce.NewHandler(cfg, users, &fakeCatalog{}, nil, nil)

		rec := postJSON(t, h.Router(), "/register", validRegistration(), nil)
		require.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Equal(t, "validation timed out", decodeBody(t, rec)["error"])
	})

	t.Run("localizes the report", func(t *testing.T) {
		translator, err := i18n.New(context.Background(), i18n.MapSource{Data: map[string]map[string]any{
			"en": {},
			"uk": {
				"validation failed": "перевірку не пройдено",
				"field is required": "обов'язкове поле",
			},
		}})
		require.NoError(t, err)

		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, translator, nil)
		rec := postJSON(t, h.Router(), "/register", map[string]any{}, map[string]string{
			"Accept-Language": "uk",
		})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "перевірку не пройдено", body["message"])
		assert.Equal(t, []any{"обов'язкове поле"}, fieldErrors(t, body, "email"))
	})
}

func TestCreateProductEndpoint(t *testing.T) {
	t.Run("creates a product and registers the sku", func(t *testing.T) {
		catalog := &fakeCatalog{}
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, catalog, nil, nil)

		rec := postJSON(t, h.Router(), "/products", validProduct(), nil)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "GM100", decodeBody(t, rec)["sku"])
		assert.Equal(t, []string{"GM100"}, catalog.added)
	})

	t.Run("reports a taken sku without registering it", func(t *testing.T) {
		catalog := &fakeCatalog{skus: map[string]bool{"GM100": true}}
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, catalog, nil, nil)

		rec := postJSON(t, h.Router(), "/products", validProduct(), nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []any{"sku is already in use"}, fieldErrors(t, decodeBody(t, rec), "sku"))
		assert.Empty(t, catalog.added)
	})

	t.Run("reports a reserved product name", func(t *testing.T) {
		catalog := &fakeCatalog{reserved: map[string]bool{"gift card": true}}
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, catalog, nil, nil)

		payload := validProduct()
		payload["name"] = "gift card"
		rec := postJSON(t, h.Router(), "/products", payload, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []any{"this product name is reserved"}, fieldErrors(t, decodeBody(t, rec), "name"))
	})

	t.Run("returns the array report shape for bad prices", func(t *testing.T) {
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, nil, nil)

		payload := validProduct()
		payload["prices"] = []any{}
		rec := postJSON(t, h.Router(), "/products", payload, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		prices, ok := body["errors"].(map[string]any)["prices"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []any{
			"must not be empty",
			"must contain a default price level",
		}, prices["arrayErrors"])
	})

	t.Run("fails closed when the catalog is down", func(t *testing.T) {
		catalog := &fakeCatalog{err: errors.New("redis down")}
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, catalog, nil, nil)

		rec := postJSON(t, h.Router(), "/products", validProduct(), nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateOrderEndpoint(t *testing.T) {
	t.Run("accepts a valid order", func(t *testing.T) {
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, nil, nil)

		rec := postJSON(t, h.Router(), "/orders", validOrder(), nil)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, decodeBody(t, rec)["id"])
	})

	t.Run("reports nested violations", func(t *testing.T) {
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, nil, nil)

		payload := validOrder()
		payload["customer"] = map[string]any{
			"fullName": "Jane Smith",
			"email":    "jane@example.com",
			"address":  map[string]any{"city": "Austin", "country": "USA"},
		}
		rec := postJSON(t, h.Router(), "/orders", payload, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, []any{"must be exactly 2 characters long"},
			fieldErrors(t, body, "customer.address.country"))
	})

	t.Run("reports element errors with index and value", func(t *testing.T) {
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, nil, nil)

		payload := validOrder()
		payload["lines"] = []any{
			map[string]any{"sku": "GM100", "quantity": 2},
			map[string]any{"sku": "bad sku!", "quantity": 0},
		}
		rec := postJSON(t, h.Router(), "/orders", payload, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		lines, ok := body["errors"].(map[string]any)["lines"].(map[string]any)
		require.True(t, ok)
		elems, ok := lines["arrayElementErrors"].([]any)
		require.True(t, ok)
		require.Len(t, elems, 1)

		elem := elems[0].(map[string]any)
		assert.Equal(t, float64(1), elem["index"])
		assert.NotNil(t, elem["attemptedValue"])
		assert.NotEmpty(t, elem["errors"])
	})
}

func TestRequestDecoding(t *testing.T) {
	newRouter := func() http.Handler {
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, nil, nil)
		return h.Router()
	}

	t.Run("rejects non-json content types", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("name=jane"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("accepts a media type with parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("{oops"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects non-object bodies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("[1,2,3]"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects oversized bodies", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxBodyBytes = 64
		h := commerce.NewHandler(cfg, &fakeUsers{}, &fakeCatalog{}, nil, nil)

		big := `{"fullName":"` + strings.Repeat("x", 200) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(big))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestHealthzEndpoint(t *testing.T) {
	t.Run("reports ok when every check passes", func(t *testing.T) {
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, nil, nil,
			func(context.Context) error { return nil },
			func(context.Context) error { return nil },
		)
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", decodeBody(t, rec)["status"])
	})

	t.Run("reports unavailable when a check fails", func(t *testing.T) {
		h := commerce.NewHandler(testConfig(), &fakeUsers{}, &fakeCatalog{}, nil, nil,
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("pool exhausted") },
		)
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		h.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
