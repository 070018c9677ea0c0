package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"github.com/idilsaglam/todolists/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_RedirectsToLists(t *testing.T) {
	b := newTestEnv(t).browser(t)

	rec := b.get("/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/lists", rec.Header().Get("Location"))
}

func TestLists_EmptySession(t *testing.T) {
	b := newTestEnv(t).browser(t)

	rec := b.get("/lists")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No lists yet.")
	assert.Contains(t, b.cookies, cookieName, "session cookie should be issued")
	assert.Contains(t, b.cookies, csrfFormField, "CSRF cookie should be issued")
}

func TestCreateList_FlashesSuccessOnce(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	rec := b.post("/lists", form("list_name", "  Groceries  "))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/lists", rec.Header().Get("Location"))

	rec = b.get("/lists")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The list has been created.")
	assert.Contains(t, rec.Body.String(), `<a href="/lists/0">Groceries</a>`)

	rec = b.get("/lists")
	assert.NotContains(t, rec.Body.String(), "The list has been created.")

	assert.Equal(t, model.Store{Lists: []model.TodoList{{Name: "Groceries", Todos: []model.Todo{}}}}, b.store())
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Operations.WithLabelValues("create_list", "ok")))
}

func TestCreateList_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "Groceries")).Code)

	rec := b.post("/lists", form("list_name", "Groceries"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "List name must be unique.")
	assert.Contains(t, body, `value="Groceries"`)
	assert.NotContains(t, body, "The list has been created.", "success and error are exclusive")

	assert.Len(t, b.store().Lists, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Operations.WithLabelValues("create_list", "duplicate_name")))
}

func TestCreateList_InvalidLength(t *testing.T) {
	b := newTestEnv(t).browser(t)

	for _, name := range []string{"", "    ", strings.Repeat("a", 101)} {
		rec := b.post("/lists", form("list_name", name))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "List name must be between 1 and 100 characters.")
	}
	assert.Empty(t, b.store().Lists)
}

func TestCreateList_RequiresCSRFToken(t *testing.T) {
	b := newTestEnv(t).browser(t)

	rec := b.do(http.MethodPost, "/lists", form("list_name", "Groceries"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowList_NotFound(t *testing.T) {
	b := newTestEnv(t).browser(t)

	for _, path := range []string{"/lists/0", "/lists/abc", "/lists/-1", "/lists/0/edit"} {
		rec := b.get(path)
		require.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/lists", rec.Header().Get("Location"))

		rec = b.get("/lists")
		assert.Contains(t, rec.Body.String(), "The specified list was not found.", path)
	}
}

func TestEditList_PrefillsName(t *testing.T) {
	b := newTestEnv(t).browser(t)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "Work")).Code)

	rec := b.get("/lists/0/edit")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Work"`)
	assert.Contains(t, rec.Body.String(), `action="/lists/0/destroy"`)
}

func TestRenameList(t *testing.T) {
	b := newTestEnv(t).browser(t)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "Work")).Code)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "Home")).Code)

	t.Run("to its own name", func(t *testing.T) {
		rec := b.post("/lists/0", form("list_name", "Work"))
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/lists/0", rec.Header().Get("Location"))
		assert.Contains(t, b.get("/lists/0").Body.String(), "The list has been updated.")
	})

	t.Run("to another list's name", func(t *testing.T) {
		rec := b.post("/lists/0", form("list_name", "Home"))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "List name must be unique.")
		assert.Equal(t, "Work", b.store().Lists[0].Name)
	})

	t.Run("to a new name", func(t *testing.T) {
		rec := b.post("/lists/1", form("list_name", "House"))
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "House", b.store().Lists[1].Name)
	})

	t.Run("missing list", func(t *testing.T) {
		rec := b.post("/lists/7", form("list_name", "Nope"))
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/lists", rec.Header().Get("Location"))
	})
}

func TestDeleteList_ShiftsIndices(t *testing.T) {
	b := newTestEnv(t).browser(t)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "A")).Code)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "B")).Code)

	rec := b.post("/lists/0/destroy", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/lists", rec.Header().Get("Location"))

	rec = b.get("/lists/0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The list has been deleted.")
	assert.Contains(t, rec.Body.String(), "<h2>B</h2>")

	rec = b.post("/lists/1/destroy", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, b.get("/lists").Body.String(), "The specified list was not found.")
}

func TestSessions_AreIsolated(t *testing.T) {
	env := newTestEnv(t)
	alice := env.browser(t)
	bob := env.browser(t)

	require.Equal(t, http.StatusFound, alice.post("/lists", form("list_name", "Alice's list")).Code)

	assert.Contains(t, bob.get("/lists").Body.String(), "No lists yet.")
	assert.NotEqual(t, alice.sessionID(), bob.sessionID())
}

func TestTamperedCookie_StartsFreshSession(t *testing.T) {
	b := newTestEnv(t).browser(t)
	b.cookies[cookieName] = &http.Cookie{Name: cookieName, Value: "garbage"}

	rec := b.get("/lists")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, "garbage", b.cookies[cookieName].Value)
}

func TestDeleteLastList_DropsSessionStore(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "Groceries")).Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.SessionsActive))

	require.Equal(t, http.StatusFound, b.post("/lists/0/destroy", nil).Code)
	assert.Equal(t, 0.0, testutil.ToFloat64(env.metrics.SessionsActive), "empty store is not kept")
	assert.Empty(t, b.store().Lists)

	rec := b.get("/lists")
	assert.Contains(t, rec.Body.String(), "The list has been deleted.")
	assert.Contains(t, rec.Body.String(), "No lists yet.")
}

func TestCompleteAll_RejectsSignedIndex(t *testing.T) {
	b := newTestEnv(t).browser(t)
	require.Equal(t, http.StatusFound, b.post("/lists", form("list_name", "Chores")).Code)
	require.Equal(t, http.StatusFound, b.post("/lists/0/todos", form("todo", "dishes")).Code)

	rec := b.post("/lists/+0/complete_all", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/lists", rec.Header().Get("Location"))
	assert.False(t, b.store().Lists[0].Todos[0].Completed)
	assert.Contains(t, b.get("/lists").Body.String(), "The specified list was not found.")
}
