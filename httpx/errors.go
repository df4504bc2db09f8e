package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/pkg/errors"

	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/machine"
	"github.com/mbolis/quick-form/repository"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log a debug message, and send an HTTP response with status 404 and default text
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted message
func LogStatusMsg(w http.ResponseWriter, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	http.Error(w, errMsg, status)
}

// Classify maps an error of the repository or the state machine to an HTTP
// status, the level to log it at and a short code.
func Classify(err error) (status int, level log.Level, code string) {
	var verr *machine.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, log.DebugLevel, "intent.validation"
	case repository.IsStorageFault(err):
		return http.StatusInternalServerError, log.ErrorLevel, "storage.fault"
	case errors.Is(err, machine.ErrUnknownIntent), errors.Is(err, machine.ErrInvalidIntent):
		return http.StatusBadRequest, log.DebugLevel, "intent.invalid"
	case errors.Is(err, machine.ErrIntentNotAllowed), errors.Is(err, machine.ErrProtectedOption):
		return http.StatusConflict, log.DebugLevel, "intent.rejected"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, log.DebugLevel, "not_found"
	}
	return http.StatusInternalServerError, log.ErrorLevel, "internal"
}

// Will log a classified error, and send a JSON body with its message
// along with the payload describing what the client should show next
func LogErrorJSON(w http.ResponseWriter, r *http.Request, err error, payload any) {
	status, level, code := Classify(err)
	log.Log(level, code+":", err)

	body := map[string]any{"error": err.Error()}
	var verr *machine.ValidationError
	if errors.As(err, &verr) {
		body["messages"] = verr.Messages()
	}
	if payload != nil {
		body["screen"] = payload
	}

	render.Status(r, status)
	render.JSON(w, r, body)
}
