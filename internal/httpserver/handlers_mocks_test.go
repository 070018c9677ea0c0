package httpserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/idilsaglam/todolists/internal/metrics"
	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/platform/config"
	"github.com/idilsaglam/todolists/internal/session"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:         "test",
		Port:           "0",
		SessionSecret:  strings.Repeat("k", 32),
		SessionBackend: config.BackendMemory,
		SessionMaxAge:  time.Hour,
	}
}

type testEnv struct {
	srv      *Server
	repo     session.Repository
	metrics  *metrics.StoreMetrics
	registry *prometheus.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	reg := metrics.NewRegistry()
	m := metrics.NewStoreMetrics(reg)
	repo := session.NewMemoryRepository(clockwork.NewFakeClock(), time.Hour, m)
	return newTestEnvWithRepo(t, repo, m, reg)
}

func newTestEnvWithRepo(t *testing.T, repo session.Repository, m *metrics.StoreMetrics, reg *prometheus.Registry) *testEnv {
	t.Helper()
	srv, err := NewServer(testConfig(), repo, m, metrics.Handler(reg))
	require.NoError(t, err)
	return &testEnv{srv: srv, repo: repo, metrics: m, registry: reg}
}

// browser replays cookies between requests and fills in the CSRF token.
type browser struct {
	t       *testing.T
	srv     *Server
	cookies map[string]*http.Cookie
}

func (e *testEnv) browser(t *testing.T) *browser {
	return &browser{t: t, srv: e.srv, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	b.srv.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	if _, ok := b.cookies[csrfFormField]; !ok {
		rec := b.get("/lists/new")
		require.Equal(b.t, http.StatusOK, rec.Code)
	}
	if form == nil {
		form = url.Values{}
	}
	form.Set(csrfFormField, b.cookies[csrfFormField].Value)
	return b.do(http.MethodPost, path, form)
}

// sessionID decodes the browser's session cookie.
func (b *browser) sessionID() uuid.UUID {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	sess, err := b.srv.cookies.Get(req, cookieName)
	require.NoError(b.t, err)
	id, ok := sessionID(sess)
	require.True(b.t, ok)
	return id
}

func (b *browser) store() model.Store {
	b.t.Helper()
	s, err := b.srv.repo.Load(context.Background(), b.sessionID())
	require.NoError(b.t, err)
	return s
}

func form(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}

// failingRepo fails every call, to exercise the internal error path.
type failingRepo struct {
	err error
}

func (f failingRepo) Load(context.Context, uuid.UUID) (model.Store, error) {
	return model.Store{}, f.err
}

func (f failingRepo) Save(context.Context, uuid.UUID, model.Store) error { return f.err }
func (f failingRepo) Delete(context.Context, uuid.UUID) error { return f.err }
func (f failingRepo) Ping(context.Context) error { return f.err }
