package adminsdk

import (
	"context"
	"strings"
	"sync"
)

// DefaultPageSize matches the admin tables' fixed page size.
const DefaultPageSize = 8

// defaultFetchLimit bounds the batch request; filtering and paging happen
// client-side over the fetched batch.
const defaultFetchLimit = 100

// ListConfig binds a List to one entity.
type ListConfig[T any] struct {
	// Fetch loads the full collection, bounded by the limit.
	Fetch func(ctx context.Context, limit int) ([]T, error)

	// Delete removes one record by id.
	Delete func(ctx context.Context, id string) error

	// ID extracts the record identity.
	ID func(record T) string

	// SearchFields returns the text fields the query is matched against.
	SearchFields func(record T) []string

	PageSize   int
	FetchLimit int
}

// List is the table controller: the fetched collection, client-side filter
// and pagination, the delete-confirmation flow, and refresh orchestration.
type List[T any] struct {
	mu  sync.Mutex
	cfg ListConfig[T]

	items   []T
	loading bool
	errMsg  string
	query   string
	page    int

	// gen guards against a stale in-flight fetch overwriting the result of
	// a newer one.
	gen uint64

	deleteTarget string
}

func NewList[T any](cfg ListConfig[T]) *List[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = defaultFetchLimit
	}
	return &List[T]{cfg: cfg, page: 1}
}

func (l *List[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *List[T]) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

func (l *List[T]) Query() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

func (l *List[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// Load fetches the collection. When several loads overlap, only the newest
// one's response is applied; older responses are discarded. A failed fetch
// clears the loading flag, empties the collection and records the error.
func (l *List[T]) Load(ctx context.Context) {
	l.mu.Lock()
	l.gen++
	token := l.gen
	l.loading = true
	limit := l.cfg.FetchLimit
	l.mu.Unlock()

	items, err := l.cfg.Fetch(ctx, limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	if token != l.gen {
		// A newer load superseded this one.
		return
	}

	l.loading = false
	if err != nil {
		l.items = nil
		l.errMsg = errorMessage(err)
		l.clampPageLocked()
		return
	}

	l.items = items
	l.errMsg = ""
	l.clampPageLocked()
}

// SetQuery updates the filter. The page is clamped rather than reset, so a
// query that still yields the current page keeps it.
func (l *List[T]) SetQuery(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = query
	l.clampPageLocked()
}

// Filtered returns the records matching the query: case-insensitive
// substring match over the configured fields, with an empty query matching
// everything.
func (l *List[T]) Filtered() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filteredLocked()
}

func (l *List[T]) filteredLocked() []T {
	if l.query == "" {
		return l.items
	}
	needle := strings.ToLower(l.query)
	matched := make([]T, 0, len(l.items))
	for _, item := range l.items {
		for _, field := range l.cfg.SearchFields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// TotalPages is ceil(filtered/pageSize), never below 1.
func (l *List[T]) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalPagesLocked()
}

func (l *List[T]) totalPagesLocked() int {
	count := len(l.filteredLocked())
	pages := (count + l.cfg.PageSize - 1) / l.cfg.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PageItems returns the current page's slice of the filtered collection.
func (l *List[T]) PageItems() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := l.filteredLocked()
	start := (l.page - 1) * l.cfg.PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + l.cfg.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (l *List[T]) SetPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = page
	l.clampPageLocked()
}

func (l *List[T]) clampPageLocked() {
	total := l.totalPagesLocked()
	if l.page > total {
		l.page = total
	}
	if l.page < 1 {
		l.page = 1
	}
}

// RequestDelete opens the confirmation step for one record.
func (l *List[T]) RequestDelete(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deleteTarget = id
}

func (l *List[T]) DeleteTarget() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deleteTarget
}

// CancelDelete dismisses the confirmation; the list is unchanged.
func (l *List[T]) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deleteTarget = ""
}

// ConfirmDelete deletes the confirmed target and refreshes the collection.
// On failure the list stays as it was, with the error recorded.
func (l *List[T]) ConfirmDelete(ctx context.Context) error {
	l.mu.Lock()
	target := l.deleteTarget
	l.deleteTarget = ""
	l.mu.Unlock()

	if target == "" {
		return nil
	}

	if err := l.cfg.Delete(ctx, target); err != nil {
		l.mu.Lock()
		l.errMsg = errorMessage(err)
		l.mu.Unlock()
		return err
	}

	l.Load(ctx)
	return nil
}

// OnSaved is the host hook for form submissions: refresh, then jump to the
// first page after a create and stay in place after an edit.
func (l *List[T]) OnSaved(ctx context.Context, created bool) {
	l.Load(ctx)
	if created {
		l.SetPage(1)
	}
}
