package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/machine"
	"github.com/mbolis/quick-form/repository"
	"github.com/mbolis/quick-form/store"
)

func newTestApp(t *testing.T) app.App {
	t.Helper()
	repo := repository.New(store.NewMemory())
	m, err := machine.New(repo)
	require.NoError(t, err)
	session := app.NewSession(m)
	t.Cleanup(session.Close)
	return app.App{Session: session, Repository: repo}
}

func call(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

func intent(name string, params any) string {
	b, _ := json.Marshal(map[string]any{"intent": name, "params": params})
	return string(b)
}

func TestScreenAndIntents(t *testing.T) {
	require := require.New(t)
	a := newTestApp(t)
	h := Wire(a)

	rec, screen := call(t, h, http.MethodGet, "/api/screen", "")
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("list", screen["view"])

	rec, screen = call(t, h, http.MethodPost, "/api/intents", intent("CreateForm", map[string]any{"name": "Feedback"}))
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("builder", screen["view"])
	require.Equal("Feedback", screen["title"])

	rec, _ = call(t, h, http.MethodPost, "/api/intents", intent("AddField", nil))
	require.Equal(http.StatusOK, rec.Code)

	state, err := a.State()
	require.NoError(err)
	require.Len(state.Form.Fields, 1)
	fieldID := state.Form.Fields[0].ID

	rec, _ = call(t, h, http.MethodPost, "/api/intents", intent("SetFieldRequired", map[string]any{"fieldId": fieldID, "required": true}))
	require.Equal(http.StatusOK, rec.Code)
	rec, screen = call(t, h, http.MethodPost, "/api/intents", intent("TogglePreview", nil))
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("preview", screen["mode"])

	rec, body := call(t, h, http.MethodPost, "/api/intents", intent("SubmitForm", map[string]any{"values": map[string]any{}}))
	require.Equal(http.StatusUnprocessableEntity, rec.Code)
	require.Equal([]any{"New Field is required"}, body["messages"])
	require.NotNil(body["screen"])

	rec, screen = call(t, h, http.MethodPost, "/api/intents", intent("SubmitForm", map[string]any{
		"values": map[string]any{fieldID: "yes"},
	}))
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("list", screen["view"])
	require.Equal(machine.NoticeSubmitted, screen["notice"])
}

func TestIntentErrors(t *testing.T) {
	h := Wire(newTestApp(t))

	for _, tc := range []struct {
		name   string
		body   string
		status int
	}{
		{"malformed body", "{", http.StatusBadRequest},
		{"missing name", `{"params":{}}`, http.StatusBadRequest},
		{"unknown intent", intent("Fly", nil), http.StatusBadRequest},
		{"blank form name", intent("CreateForm", map[string]any{"name": "  "}), http.StatusBadRequest},
		{"not allowed in view", intent("SubmitForm", nil), http.StatusConflict},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := call(t, h, http.MethodPost, "/api/intents", tc.body)
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRetryWithoutPending(t *testing.T) {
	h := Wire(newTestApp(t))
	rec, screen := call(t, h, http.MethodPost, "/api/retry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "list", screen["view"])
}

func TestFormsData(t *testing.T) {
	require := require.New(t)
	a := newTestApp(t)
	h := Wire(a)

	rec, _ := call(t, h, http.MethodPost, "/api/intents", intent("CreateForm", map[string]any{"name": "Feedback"}))
	require.Equal(http.StatusOK, rec.Code)
	state, err := a.State()
	require.NoError(err)
	formID := state.Form.ID

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forms", nil))
	require.Equal(http.StatusOK, rec.Code)
	var forms []map[string]any
	require.NoError(json.Unmarshal(rec.Body.Bytes(), &forms))
	require.Len(forms, 1)
	require.Equal(formID, forms[0]["id"])

	rec, form := call(t, h, http.MethodGet, "/api/forms/"+formID, "")
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("Feedback", form["name"])

	rec, _ = call(t, h, http.MethodGet, "/api/forms/missing", "")
	require.Equal(http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/forms/"+formID+"/responses", nil))
	require.Equal(http.StatusOK, rec.Code)
	require.JSONEq(`[]`, rec.Body.String())

	rec, _ = call(t, h, http.MethodGet, "/api/forms/missing/responses", "")
	require.Equal(http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := Wire(newTestApp(t))
	call(t, h, http.MethodGet, "/api/screen", "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "quickform_http_request_duration_seconds")
}
