package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ums-console/internal/directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct{}

func (staticTokens) Token(context.Context) (string, error) { return "test-token", nil }

func newEngine(t *testing.T, handler http.Handler) *Engine {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := directory.NewClient(srv.URL, 5*time.Second, staticTokens{})
	return NewEngine(directory.NewRepository(client))
}

func TestSubmitBlocksOnFieldErrors(t *testing.T) {
	engine := newEngine(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("local validation failures must never reach the network")
	}))

	f := engine.OpenCreate()
	f.Set(FieldFirstName, "Ana")
	f.Set(FieldPassword, "short1")

	err := engine.Submit(context.Background())
	require.ErrorIs(t, err, ErrFieldErrors)
	assert.Equal(t, PhaseOpen, f.Phase)
	assert.Equal(t, "Ana", f.Value(FieldFirstName), "entered data survives a failed submit")
	assert.NotEmpty(t, f.Errors)
}

func TestSubmitKeepsFormOpenOnRemoteRejection(t *testing.T) {
	engine := newEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Email is already used"}`))
	}))

	f := engine.OpenCreate()
	for field, value := range map[string]string{
		FieldFirstName: "Ana", FieldLastName: "Reyes", FieldUsername: "anar",
		FieldEmail: "ana@example.com", FieldRole: directory.RoleStaff, FieldSystem: directory.SystemIMS,
		FieldPassword: "longenough12", FieldConfirmPassword: "longenough12",
	} {
		f.Set(field, value)
	}

	err := engine.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Email is already used", err.Error(), "remote message surfaces verbatim")
	assert.Equal(t, PhaseOpen, f.Phase)
	assert.Equal(t, "ana@example.com", f.Value(FieldEmail))
}

func TestSubmitCreateSuccessClosesAndRefreshes(t *testing.T) {
	var created bool
	engine := newEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/create":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "4321", r.FormValue("pin"))
			created = true
			w.Write([]byte(`{"message": "created"}`))
		case "/users/list-users":
			w.Write([]byte(`[{"userID": 1, "fullName": "Mara Lim", "username": "maral", "email": "mara@example.com", "userRole": "manager", "system": "POS", "isDisabled": false}]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	f := engine.OpenCreate()
	for field, value := range map[string]string{
		FieldFirstName: "Mara", FieldLastName: "Lim", FieldUsername: "maral",
		FieldEmail: "mara@example.com", FieldRole: directory.RoleManager, FieldSystem: directory.SystemPOS,
		FieldPassword: "longenough12", FieldConfirmPassword: "longenough12", FieldPin: "4321",
	} {
		f.Set(field, value)
	}

	require.NoError(t, engine.Submit(context.Background()))
	assert.True(t, created)
	assert.Equal(t, PhaseClosed, f.Phase)
	assert.Equal(t, "", f.Value(FieldPassword), "successful submit resets the form")
}

func TestSubmitEditOmitsBlankPassword(t *testing.T) {
	var form map[string][]string
	engine := newEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/users/update/4" && r.Method == http.MethodPut:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			form = r.MultipartForm.Value
			w.Write([]byte(`{"message": "updated"}`))
		case r.URL.Path == "/users/list-users":
			json.NewEncoder(w).Encode([]any{})
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))

	emp := directory.Employee{
		ID: 4, FirstName: "Ben", LastName: "Tan", Username: "bent",
		Email: "ben@example.com", Role: directory.RoleStaff, System: directory.SystemIMS,
	}
	f := engine.OpenEdit(emp)
	f.Set(FieldConfirmPassword, "stale confirmation text")

	require.NoError(t, engine.Submit(context.Background()))
	require.NotNil(t, form)
	assert.NotContains(t, form, "password")
	assert.NotContains(t, form, "username")
	assert.Equal(t, []string{"ben@example.com"}, form["email"])
}
