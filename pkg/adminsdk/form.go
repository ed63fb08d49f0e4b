package adminsdk

import (
	"context"
	"fmt"
	"sync"
)

type FormState int

const (
	FormClosed FormState = iota
	FormEditing
	FormSubmitting
)

func (s FormState) String() string {
	switch s {
	case FormClosed:
		return "closed"
	case FormEditing:
		return "editing"
	case FormSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

// FileRules validates staged files before they enter the draft.
type FileRules struct {
	MaxSize      int64
	AllowedTypes []string
}

func (r FileRules) check(file *StagedFile) string {
	if r.MaxSize > 0 && file.Size() > r.MaxSize {
		return fmt.Sprintf("File is too large (max %d bytes)", r.MaxSize)
	}
	if len(r.AllowedTypes) > 0 {
		for _, t := range r.AllowedTypes {
			if t == file.ContentType {
				return ""
			}
		}
		return "Unsupported file type: " + file.ContentType
	}
	return ""
}

// FormSchema binds a Form to one entity: how to seed a draft, validate it,
// and persist it. Create and Update receive the staged file when one was
// selected; a nil file on update means "keep the current image".
type FormSchema[T any] struct {
	// Empty returns a fresh draft for create mode.
	Empty func() T

	// ID extracts the persisted identity, empty for unsaved records.
	ID func(record T) string

	// ImageURL extracts the persisted image reference, empty when the
	// entity has no image or none is set.
	ImageURL func(record T) string

	// Validate returns an inline error message, empty when the draft is
	// acceptable to submit.
	Validate func(draft T) string

	// RequireImageOnCreate rejects a create submission that has neither a
	// staged file nor an existing preview.
	RequireImageOnCreate bool
	MissingImageMessage  string

	File FileRules

	Create func(ctx context.Context, draft T, file *StagedFile) error
	Update func(ctx context.Context, id string, draft T, file *StagedFile) error
}

// Form is the modal controller owning the mutable draft of one record: its
// scalar fields and nested collections, an optionally staged file, the
// derived preview, and the submit lifecycle.
type Form[T any] struct {
	mu     sync.Mutex
	schema FormSchema[T]

	state          FormState
	draft          T
	recordID       string
	staged         *StagedFile
	preview        previewSlot
	previewFactory PreviewFactory
	errMsg         string

	// onSaved is notified after a successful submit; created reports
	// whether the save was a create rather than an update.
	onSaved func(created bool)
}

// FormOption tweaks form construction.
type FormOption[T any] func(*Form[T])

// WithPreviewLifecycle installs the factory/releaser pair backing transient
// previews. Without it previews are tracked but carry no URL resources.
func WithPreviewLifecycle[T any](factory PreviewFactory, releaser PreviewReleaser) FormOption[T] {
	return func(f *Form[T]) {
		f.previewFactory = factory
		f.preview.release = releaser
	}
}

// OnSaved registers the host callback fired after a successful submit.
func OnSaved[T any](fn func(created bool)) FormOption[T] {
	return func(f *Form[T]) { f.onSaved = fn }
}

func NewForm[T any](schema FormSchema[T], opts ...FormOption[T]) *Form[T] {
	f := &Form[T]{schema: schema, state: FormClosed}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form[T]) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form[T]) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *Form[T]) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recordID != ""
}

func (f *Form[T]) Preview() *Preview {
	return f.preview.get()
}

func (f *Form[T]) StagedFile() *StagedFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staged
}

// Open seeds the form: from an existing record for edit, from the schema's
// empty draft for create. Stale error, staged file and preview from any
// previous session are cleared.
func (f *Form[T]) Open(record *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FormSubmitting {
		return fmt.Errorf("form is submitting")
	}

	f.errMsg = ""
	f.staged = nil

	if record != nil {
		f.draft = *record
		f.recordID = f.schema.ID(*record)
		if url := f.persistedImageURL(*record); url != "" {
			f.preview.setPersisted(url)
		} else {
			f.preview.clear()
		}
	} else {
		f.draft = f.schema.Empty()
		f.recordID = ""
		f.preview.clear()
	}

	f.state = FormEditing
	return nil
}

func (f *Form[T]) persistedImageURL(record T) string {
	if f.schema.ImageURL == nil {
		return ""
	}
	return f.schema.ImageURL(record)
}

// Edit applies a mutation to the draft. Field edits and nested-collection
// add/update/remove all go through here.
func (f *Form[T]) Edit(mutate func(draft *T)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FormEditing {
		return fmt.Errorf("form is not editing")
	}
	mutate(&f.draft)
	return nil
}

// StageFile validates and stages a replacement file. An invalid file sets
// an inline error and leaves the previous selection untouched. A valid file
// replaces the staged file and swaps the preview, releasing the previous
// transient one.
func (f *Form[T]) StageFile(file *StagedFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FormEditing {
		return fmt.Errorf("form is not editing")
	}

	if msg := f.schema.File.check(file); msg != "" {
		f.errMsg = msg
		return nil
	}

	f.errMsg = ""
	f.staged = file

	url := ""
	if f.previewFactory != nil {
		url = f.previewFactory(file)
	}
	f.preview.setTransient(url)
	return nil
}

// RemoveItem removes a nested item from the draft and, when the item has a
// persisted identity, fires the eager delete call immediately. A failed
// delete surfaces as an inline error but does not revert the local removal.
func (f *Form[T]) RemoveItem(ctx context.Context, remove func(draft *T), eagerDelete func(ctx context.Context) error) error {
	f.mu.Lock()
	if f.state != FormEditing {
		f.mu.Unlock()
		return fmt.Errorf("form is not editing")
	}
	remove(&f.draft)
	f.mu.Unlock()

	if eagerDelete == nil {
		return nil
	}

	if err := eagerDelete(ctx); err != nil {
		f.mu.Lock()
		f.errMsg = errorMessage(err)
		f.mu.Unlock()
		return err
	}
	return nil
}

// Save validates the draft and submits it. Validation failure keeps the
// form editing with an inline error and makes no network call. A failed
// submit returns to editing with the draft preserved; a successful one
// closes the form and notifies the host.
func (f *Form[T]) Save(ctx context.Context) error {
	f.mu.Lock()

	if f.state != FormEditing {
		f.mu.Unlock()
		return fmt.Errorf("form is not editing")
	}

	if f.schema.Validate != nil {
		if msg := f.schema.Validate(f.draft); msg != "" {
			f.errMsg = msg
			f.mu.Unlock()
			return nil
		}
	}

	creating := f.recordID == ""
	if creating && f.schema.RequireImageOnCreate && f.staged == nil && f.preview.get() == nil {
		f.errMsg = f.schema.MissingImageMessage
		f.mu.Unlock()
		return nil
	}

	f.errMsg = ""
	f.state = FormSubmitting
	draft := f.draft
	recordID := f.recordID
	staged := f.staged
	f.mu.Unlock()

	var err error
	if creating {
		err = f.schema.Create(ctx, draft, staged)
	} else {
		err = f.schema.Update(ctx, recordID, draft, staged)
	}

	f.mu.Lock()
	if err != nil {
		f.state = FormEditing
		f.errMsg = errorMessage(err)
		f.mu.Unlock()
		return err
	}

	f.state = FormClosed
	f.staged = nil
	f.preview.clear()
	onSaved := f.onSaved
	f.mu.Unlock()

	if onSaved != nil {
		onSaved(creating)
	}
	return nil
}

// Close dismisses the form and releases any transient preview. Closing is
// refused while a submit is in flight.
func (f *Form[T]) Close() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FormSubmitting {
		return false
	}

	f.state = FormClosed
	f.staged = nil
	f.errMsg = ""
	f.recordID = ""
	f.preview.clear()
	return true
}
