package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultPageSize = 5

type Entity interface {
	EntityID() domain.ID
}

// Store is the remote collection an Editor works against.
type Store[T Entity, I any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id domain.ID) (T, error)
	Create(ctx context.Context, in I) (T, error)
	Update(ctx context.Context, id domain.ID, in I) (T, error)
}

// Strategy decides how the held collection catches up with a successful save.
type Strategy string

const (
	// ReconcileRefetch reloads the whole collection, patching locally if the
	// reload fails.
	ReconcileRefetch Strategy = "refetch"
	// ReconcilePatch appends or replaces the returned record by id.
	ReconcilePatch Strategy = "patch"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReconcileRefetch:
		return ReconcileRefetch, nil
	case ReconcilePatch:
		return ReconcilePatch, nil
	default:
		return "", fmt.Errorf("unknown reconcile strategy %q", s)
	}
}

type Options[T Entity, I any] struct {
	// Noun names one record in notices, e.g. "Facility".
	Noun     string
	PageSize int
	Strategy Strategy
	// InputOf pre-fills the edit form from a held record.
	InputOf func(T) I
}

// State is a snapshot of an Editor for rendering.
type State[T Entity, I any] struct {
	Items    []T
	Pager    Pager
	FormOpen bool
	Editing  domain.ID
	Form     I
	Detail   *T
	Notice   *Notice
}

// IsEditing reports whether the open form edits an existing record.
func (s State[T, I]) IsEditing() bool { return !s.Editing.IsZero() }

// Editor is the list/editor view of one entity collection: a paginated table,
// a create/edit form and a detail popup.
type Editor[T Entity, I any] struct {
	mu    sync.Mutex
	store Store[T, I]
	opts  Options[T, I]
	log   logger.Logger

	items    []T
	pager    Pager
	form     I
	formOpen bool
	editing  domain.ID
	detail   *T
	notice   *Notice
	closed   bool
}

func NewEditor[T Entity, I any](store Store[T, I], opts Options[T, I], log logger.Logger) *Editor[T, I] {
	if opts.Strategy == "" {
		opts.Strategy = ReconcileRefetch
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Noun == "" {
		opts.Noun = "Record"
	}
	return &Editor[T, I]{
		store: store,
		opts:  opts,
		log:   log,
		pager: NewPager(opts.PageSize),
	}
}

func (e *Editor[T, I]) noun() string { return strings.ToLower(e.opts.Noun) }

// gone reports whether results arriving now must be dropped.
// Caller holds e.mu.
func (e *Editor[T, I]) gone(ctx context.Context) bool {
	return e.closed || ctx.Err() != nil
}

// Load replaces the held collection with the remote one. On failure the
// previous collection is kept and an inline error is set.
func (e *Editor[T, I]) Load(ctx context.Context) error {
	items, err := e.store.List(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone(ctx) {
		return domain.ErrViewClosed
	}

	if err != nil {
		e.log.LogAttrs(ctx, logger.WarnLevel, "failed to load collection",
			logger.String("noun", e.noun()),
			logger.String("error", err.Error()),
		)
		e.notice = Failure("load "+e.noun()+" list", err)
		return fmt.Errorf("load %s list: %w", e.noun(), err)
	}

	e.setItems(items)
	return nil
}

// Caller holds e.mu.
func (e *Editor[T, I]) setItems(items []T) {
	e.items = items
	e.pager.Resize(len(items))
}

// OpenCreate opens an empty form that will create a new record.
func (e *Editor[T, I]) OpenCreate() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.ErrViewClosed
	}

	var zero I
	e.form = zero
	e.editing = ""
	e.formOpen = true
	return nil
}

// OpenEdit opens the form for the record with the given id, pre-filled from
// the held copy. The form opens even when the record is not held, in which
// case it starts empty and ErrNotFound is returned.
func (e *Editor[T, I]) OpenEdit(id domain.ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.ErrViewClosed
	}

	var zero I
	e.form = zero
	e.editing = id
	e.formOpen = true

	rec, ok := e.find(id)
	if !ok {
		return fmt.Errorf("%s %s: %w", e.noun(), id, domain.ErrNotFound)
	}
	if e.opts.InputOf != nil {
		e.form = e.opts.InputOf(rec)
	}
	return nil
}

// SetForm replaces the form values.
func (e *Editor[T, I]) SetForm(in I) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.ErrViewClosed
	}
	e.form = in
	return nil
}

// Cancel closes the form without touching the collection.
func (e *Editor[T, I]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetForm()
}

// Caller holds e.mu.
func (e *Editor[T, I]) resetForm() {
	var zero I
	e.form = zero
	e.editing = ""
	e.formOpen = false
}

// Submit saves the open form: an update when an edit is in progress, a
// create otherwise. On failure the form stays open with its values.
func (e *Editor[T, I]) Submit(ctx context.Context) (T, error) {
	var zero T

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return zero, domain.ErrViewClosed
	}
	if !e.formOpen {
		e.mu.Unlock()
		return zero, domain.ErrFormClosed
	}
	in, editing := e.form, e.editing
	e.mu.Unlock()

	creating := editing.IsZero()
	action := "update " + e.noun()
	var (
		rec T
		err error
	)
	if creating {
		action = "create " + e.noun()
		rec, err = e.store.Create(ctx, in)
	} else {
		rec, err = e.store.Update(ctx, editing, in)
	}

	if err != nil {
		return zero, e.submitFailed(ctx, action, err)
	}

	if err := e.reconcile(ctx, editing, rec); err != nil {
		return zero, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone(ctx) {
		return zero, domain.ErrViewClosed
	}
	e.resetForm()
	if creating {
		e.notice = Success("%s created successfully", e.opts.Noun)
	} else {
		e.notice = Success("%s updated successfully", e.opts.Noun)
	}
	return rec, nil
}

func (e *Editor[T, I]) submitFailed(ctx context.Context, action string, err error) error {
	if errors.Is(err, domain.ErrEmptyResponse) {
		// Accepted without a body: the collection is the only source of truth.
		items, lerr := e.store.List(ctx)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.gone(ctx) {
			return domain.ErrViewClosed
		}
		if lerr == nil {
			e.setItems(items)
		}
		e.resetForm()
		e.notice = Warning("%s saved, but the booking service returned no data", e.opts.Noun)
		return fmt.Errorf("%s: %w", action, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone(ctx) {
		return domain.ErrViewClosed
	}
	e.log.LogAttrs(ctx, logger.WarnLevel, "failed to save record",
		logger.String("action", action),
		logger.String("error", err.Error()),
	)
	e.notice = Failure(action, err)
	return fmt.Errorf("%s: %w", action, err)
}

func (e *Editor[T, I]) reconcile(ctx context.Context, editing domain.ID, rec T) error {
	if e.opts.Strategy == ReconcileRefetch {
		items, err := e.store.List(ctx)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.gone(ctx) {
			return domain.ErrViewClosed
		}
		if err == nil {
			e.setItems(items)
			return nil
		}
		e.log.LogAttrs(ctx, logger.WarnLevel, "refetch after save failed, patching locally",
			logger.String("noun", e.noun()),
			logger.String("error", err.Error()),
		)
		e.patch(editing, rec)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone(ctx) {
		return domain.ErrViewClosed
	}
	e.patch(editing, rec)
	return nil
}

// patch folds a saved record into the held collection. An update replaces
// the slot of the edited id, whatever id the response carries. A create
// replaces a record with the same id or appends.
// Caller holds e.mu.
func (e *Editor[T, I]) patch(editing domain.ID, rec T) {
	id := rec.EntityID()
	if !editing.IsZero() {
		if id.IsZero() {
			if s, ok := any(rec).(interface{ WithEntityID(domain.ID) T }); ok {
				rec = s.WithEntityID(editing)
			}
		}
		id = editing
	}
	if !id.IsZero() {
		for i := range e.items {
			if e.items[i].EntityID() == id {
				items := append([]T(nil), e.items...)
				items[i] = rec
				e.setItems(items)
				return
			}
		}
	}
	if !editing.IsZero() {
		// The edited record is no longer held; nothing to replace.
		return
	}
	items := make([]T, 0, len(e.items)+1)
	items = append(items, e.items...)
	e.setItems(append(items, rec))
}

// Caller holds e.mu.
func (e *Editor[T, I]) find(id domain.ID) (T, bool) {
	for _, it := range e.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// ShowDetail fetches one record for the detail popup. When the fetch fails
// the held copy is shown instead, if there is one.
func (e *Editor[T, I]) ShowDetail(ctx context.Context, id domain.ID) (T, error) {
	var zero T
	rec, err := e.store.Get(ctx, id)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone(ctx) {
		return zero, domain.ErrViewClosed
	}

	if err != nil {
		held, ok := e.find(id)
		e.log.LogAttrs(ctx, logger.WarnLevel, "failed to fetch record",
			logger.String("noun", e.noun()),
			logger.String("id", id.String()),
			logger.String("error", err.Error()),
			logger.Any("fallback", ok),
		)
		if !ok {
			e.notice = Failure("load "+e.noun()+" details", err)
			return zero, fmt.Errorf("get %s %s: %w", e.noun(), id, err)
		}
		rec = held
	}

	e.detail = &rec
	return rec, nil
}

func (e *Editor[T, I]) CloseDetail() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.detail = nil
}

// Visible returns the records on the current page.
func (e *Editor[T, I]) Visible() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible()
}

// Caller holds e.mu.
func (e *Editor[T, I]) visible() []T {
	lo, hi := e.pager.Bounds()
	return append([]T(nil), e.items[lo:hi]...)
}

func (e *Editor[T, I]) Pages() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pager.Pages()
}

func (e *Editor[T, I]) Page() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pager.Page()
}

func (e *Editor[T, I]) NextPage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pager.Next()
}

func (e *Editor[T, I]) PrevPage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pager.Prev()
}

func (e *Editor[T, I]) GotoPage(k int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pager.Goto(k)
}

// Notify replaces the inline notice.
func (e *Editor[T, I]) Notify(n *Notice) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notice = n
}

// Close unmounts the view. Calls that complete afterwards change nothing.
func (e *Editor[T, I]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

func (e *Editor[T, I]) State() State[T, I] {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := State[T, I]{
		Items:    e.visible(),
		Pager:    e.pager,
		FormOpen: e.formOpen,
		Editing:  e.editing,
		Form:     e.form,
		Notice:   e.notice,
	}
	if e.detail != nil {
		d := *e.detail
		s.Detail = &d
	}
	return s
}
