package routes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/goccy/go-json"

	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/httpx"
	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/machine"
	"github.com/mbolis/quick-form/view"
)

type IntentRequest struct {
	Intent string          `json:"intent"`
	Params json.RawMessage `json:"params,omitempty"`
}

func GetScreen(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := app.State()
		if err != nil {
			httpx.LogInternalError(w, "session.state", err)
			return
		}
		render.JSON(w, r, view.Render(state))
	}
}

func PostIntent(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IntentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if req.Intent == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.intent", "missing intent name")
			return
		}

		in, err := machine.DecodeIntent(req.Intent, req.Params)
		if err != nil {
			httpx.LogErrorJSON(w, r, err, nil)
			return
		}

		state, err := app.Dispatch(in)
		respond(w, r, state, err)
	}
}

func PostRetry(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := app.Retry()
		respond(w, r, state, err)
	}
}

func respond(w http.ResponseWriter, r *http.Request, state machine.State, err error) {
	switch {
	case err == app.ErrSessionClosed:
		httpx.LogStatus(w, http.StatusServiceUnavailable, log.WarnLevel, "session.closed")
	case err != nil:
		httpx.LogErrorJSON(w, r, err, view.Render(state))
	default:
		render.JSON(w, r, view.Render(state))
	}
}
