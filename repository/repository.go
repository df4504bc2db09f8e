// Package repository offers typed operations over the two collections,
// Forms and Responses, each kept as a single JSON blob in a store.Store.
package repository

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/model"
	"github.com/mbolis/quick-form/store"
)

const (
	FormsKey     = "form_builder_forms"
	ResponsesKey = "form_builder_responses"
)

type Repository struct {
	store store.Store
}

func New(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) ListForms() ([]model.Form, error) {
	var forms []model.Form
	err := r.load(FormsKey, &forms)
	if forms == nil {
		forms = []model.Form{}
	}
	return forms, err
}

// Form returns the first form with the given id.
func (r *Repository) Form(id string) (model.Form, bool, error) {
	forms, err := r.ListForms()
	if err != nil {
		return model.Form{}, false, err
	}
	for _, f := range forms {
		if f.ID == id {
			return f, true, nil
		}
	}
	return model.Form{}, false, nil
}

// UpsertForm replaces the form with the same id, or appends it.
// Exactly one form with that id is left in the collection.
func (r *Repository) UpsertForm(form model.Form) error {
	if err := model.Validate(form); err != nil {
		return errors.Wrap(err, "invalid form")
	}

	forms, err := r.ListForms()
	if err != nil {
		return err
	}

	replaced := false
	kept := forms[:0]
	for _, f := range forms {
		if f.ID != form.ID {
			kept = append(kept, f)
			continue
		}
		if !replaced {
			kept = append(kept, form)
			replaced = true
		}
	}
	if !replaced {
		kept = append(kept, form)
	}

	return r.save(FormsKey, kept)
}

// DeleteForm removes the form and then every response referencing it.
// If the second write fails the responses are left orphaned and the
// StorageFault is returned.
func (r *Repository) DeleteForm(formID string) error {
	forms, err := r.ListForms()
	if err != nil {
		return err
	}

	kept := forms[:0]
	for _, f := range forms {
		if f.ID != formID {
			kept = append(kept, f)
		}
	}
	if err := r.save(FormsKey, kept); err != nil {
		return err
	}

	responses, err := r.ListResponses()
	if err != nil {
		return err
	}

	keptResponses := responses[:0]
	for _, resp := range responses {
		if resp.FormID != formID {
			keptResponses = append(keptResponses, resp)
		}
	}
	if len(keptResponses) == len(responses) {
		return nil
	}
	if err := r.save(ResponsesKey, keptResponses); err != nil {
		log.Warnf("repository.delete_form.cascade: responses of form %s left orphaned", formID)
		return err
	}
	return nil
}

func (r *Repository) ListResponses() ([]model.Response, error) {
	var responses []model.Response
	err := r.load(ResponsesKey, &responses)
	if responses == nil {
		responses = []model.Response{}
	}
	return responses, err
}

// ResponsesFor returns the responses of one form, in submission order.
func (r *Repository) ResponsesFor(formID string) ([]model.Response, error) {
	responses, err := r.ListResponses()
	if err != nil {
		return nil, err
	}

	filtered := []model.Response{}
	for _, resp := range responses {
		if resp.FormID == formID {
			filtered = append(filtered, resp)
		}
	}
	return filtered, nil
}

// Response returns the response with the given id and its position in the collection.
func (r *Repository) Response(id string) (model.Response, int, bool, error) {
	responses, err := r.ListResponses()
	if err != nil {
		return model.Response{}, -1, false, err
	}
	for i, resp := range responses {
		if resp.ID == id {
			return resp, i, true, nil
		}
	}
	return model.Response{}, -1, false, nil
}

func (r *Repository) AppendResponse(response model.Response) error {
	if err := model.Validate(response); err != nil {
		return errors.Wrap(err, "invalid response")
	}

	responses, err := r.ListResponses()
	if err != nil {
		return err
	}
	return r.save(ResponsesKey, append(responses, response))
}

// UpdateResponseAt overwrites the response at the given position.
func (r *Repository) UpdateResponseAt(index int, response model.Response) error {
	if err := model.Validate(response); err != nil {
		return errors.Wrap(err, "invalid response")
	}

	responses, err := r.ListResponses()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(responses) {
		return fault("update_response_at", errors.Wrapf(ErrOutOfRange, "index %d, length %d", index, len(responses)))
	}

	responses[index] = response
	return r.save(ResponsesKey, responses)
}

// UpdateResponse overwrites the response with the same id.
func (r *Repository) UpdateResponse(response model.Response) error {
	if err := model.Validate(response); err != nil {
		return errors.Wrap(err, "invalid response")
	}

	responses, err := r.ListResponses()
	if err != nil {
		return err
	}
	for i := range responses {
		if responses[i].ID == response.ID {
			responses[i] = response
			return r.save(ResponsesKey, responses)
		}
	}
	return errors.Wrapf(ErrNotFound, "response %s", response.ID)
}

func (r *Repository) load(key string, into any) error {
	blob, ok, err := r.store.Get(key)
	if err != nil {
		log.Errorf("repository.get %s: %s", key, err)
		return fault("get "+key, err)
	}
	if !ok || blob == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(blob), into); err != nil {
		log.Errorf("repository.decode %s: %s", key, err)
		return fault("decode "+key, errors.Wrap(ErrCorrupt, err.Error()))
	}
	return nil
}

func (r *Repository) save(key string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fault("encode "+key, err)
	}

	if err := r.store.Set(key, string(blob)); err != nil {
		log.Errorf("repository.set %s: %s", key, err)
		return fault("set "+key, err)
	}
	return nil
}
