package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/httpx"
	"github.com/mbolis/quick-form/machine"
	"github.com/mbolis/quick-form/model"
)

// Reads go through the session so they never interleave with an intent
// writing to the same store.

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var forms []model.Form
		var err error
		if doErr := app.Do(func(*machine.Machine) {
			forms, err = app.Repository.ListForms()
		}); doErr != nil {
			err = doErr
		}
		if err != nil {
			httpx.LogInternalError(w, "repository.list_forms", err)
			return
		}

		render.JSON(w, r, forms)
	}
}

func GetFormById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId := chi.URLParam(r, "id")

		var form model.Form
		var found bool
		var err error
		if doErr := app.Do(func(*machine.Machine) {
			form, found, err = app.Repository.Form(formId)
		}); doErr != nil {
			err = doErr
		}
		if err != nil {
			httpx.LogInternalError(w, "repository.get_form", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "repository.get_form", formId)
			return
		}

		render.JSON(w, r, form)
	}
}

func GetFormResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId := chi.URLParam(r, "id")

		var responses []model.Response
		var found bool
		var err error
		if doErr := app.Do(func(*machine.Machine) {
			if _, found, err = app.Repository.Form(formId); err != nil || !found {
				return
			}
			responses, err = app.Repository.ResponsesFor(formId)
		}); doErr != nil {
			err = doErr
		}
		if err != nil {
			httpx.LogInternalError(w, "repository.get_responses", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "repository.get_responses", formId)
			return
		}

		render.JSON(w, r, responses)
	}
}
