package form

import (
	"context"
	"errors"

	"ums-console/internal/directory"
)

// ErrFieldErrors means local validation failed; the field errors are
// on the form and nothing reached the network.
var ErrFieldErrors = errors.New("form has field errors")

// Engine drives one modal flow (create or edit) against the
// repository. Both flows share the same submission contract; only the
// rule set differs by mode.
type Engine struct {
	repo *directory.Repository
	form *Form
}

func NewEngine(repo *directory.Repository) *Engine {
	return &Engine{repo: repo, form: New(ModeCreate)}
}

// Form exposes the current modal state.
func (e *Engine) Form() *Form {
	return e.form
}

// OpenCreate starts a blank add flow.
func (e *Engine) OpenCreate() *Form {
	e.form = New(ModeCreate)
	e.form.OpenBlank()
	return e.form
}

// OpenEdit starts an edit flow pre-seeded from the target record.
func (e *Engine) OpenEdit(emp directory.Employee) *Form {
	e.form = New(ModeEdit)
	e.form.OpenFor(emp)
	return e.form
}

// Cancel closes the modal, discarding any edits.
func (e *Engine) Cancel() {
	e.form.Close()
}

// Submit validates and, on zero field errors, delegates to the
// repository. A repository failure keeps the form open with the
// entered data intact; the remote message is returned verbatim.
func (e *Engine) Submit(ctx context.Context) error {
	if e.form.Phase != PhaseOpen {
		return errors.New("no open form to submit")
	}

	e.form.Phase = PhaseValidating
	errs := Validate(e.form)
	if len(errs) > 0 {
		e.form.Errors = errs
		e.form.Phase = PhaseOpen
		return ErrFieldErrors
	}
	e.form.Errors = map[string]string{}

	e.form.Phase = PhaseSubmitting
	payload := Payload(e.form)

	var err error
	if e.form.Mode == ModeCreate {
		err = e.repo.Create(ctx, payload)
	} else {
		err = e.repo.Update(ctx, e.form.TargetID, payload)
	}
	if err != nil {
		e.form.Phase = PhaseOpen
		return err
	}

	e.form.Close()
	return nil
}
