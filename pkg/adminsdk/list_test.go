package adminsdk

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticBanners(items []Banner) ListConfig[Banner] {
	return ListConfig[Banner]{
		Fetch: func(ctx context.Context, limit int) ([]Banner, error) {
			return items, nil
		},
		Delete:       func(ctx context.Context, id string) error { return nil },
		ID:           func(b Banner) string { return b.ID },
		SearchFields: func(b Banner) []string { return []string{b.Title, b.Subtitle} },
	}
}

func makeBanners(n int) []Banner {
	banners := make([]Banner, 0, n)
	for i := 0; i < n; i++ {
		banners = append(banners, Banner{ID: string(rune('a' + i)), Title: "Banner " + string(rune('A'+i))})
	}
	return banners
}

func TestListFilterCaseInsensitiveSubstring(t *testing.T) {
	items := []Banner{
		{ID: "1", Title: "Summer Sale"},
		{ID: "2", Title: "Winter Deals", Subtitle: "summer collection preview"},
		{ID: "3", Title: "Spring"},
	}
	l := NewList(staticBanners(items))
	l.Load(context.Background())

	l.SetQuery("SUMMER")
	filtered := l.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "2", filtered[1].ID, "subtitle matches count too")

	l.SetQuery("")
	assert.Len(t, l.Filtered(), 3, "empty query matches everything")
}

func TestListFilterIdempotentWithEmptyQuery(t *testing.T) {
	items := []Banner{
		{ID: "1", Title: "Summer Sale"},
		{ID: "2", Title: "Winter Deals"},
	}
	l := NewList(staticBanners(items))
	l.Load(context.Background())

	l.SetQuery("sale")
	withQuery := l.Filtered()

	// Re-filtering the already-filtered view with an empty query changes
	// nothing: filter(filter(list, q), "") == filter(list, q).
	l2 := NewList(staticBanners(withQuery))
	l2.Load(context.Background())
	l2.SetQuery("")
	assert.Equal(t, withQuery, l2.Filtered())
}

func TestListPaginationSlicesFixedPages(t *testing.T) {
	l := NewList(staticBanners(makeBanners(10)))
	l.Load(context.Background())

	assert.Equal(t, 2, l.TotalPages())
	assert.Len(t, l.PageItems(), 8)

	l.SetPage(2)
	assert.Len(t, l.PageItems(), 2)
}

func TestListPageClampedIntoValidRange(t *testing.T) {
	l := NewList(staticBanners(makeBanners(10)))
	l.Load(context.Background())

	l.SetPage(99)
	assert.Equal(t, 2, l.Page())

	l.SetPage(-3)
	assert.Equal(t, 1, l.Page())
}

func TestListFilterShrinkClampsPageDown(t *testing.T) {
	items := makeBanners(10)
	items[0].Title = "Unique needle"
	l := NewList(staticBanners(items))
	l.Load(context.Background())

	l.SetPage(2)
	require.Equal(t, 2, l.Page())

	l.SetQuery("needle")
	assert.Equal(t, 1, l.Page(), "page clamps down when the filtered set shrinks")
	assert.Equal(t, 1, l.TotalPages())
}

func TestListEmptyCollectionHasOnePage(t *testing.T) {
	l := NewList(staticBanners(nil))
	l.Load(context.Background())

	assert.Equal(t, 1, l.TotalPages())
	assert.Equal(t, 1, l.Page())
	assert.Empty(t, l.PageItems())
}

func TestListLoadFailureClearsLoadingAndEmptiesCollection(t *testing.T) {
	cfg := staticBanners(makeBanners(3))
	failing := false
	cfg.Fetch = func(ctx context.Context, limit int) ([]Banner, error) {
		if failing {
			return nil, errors.New("connection refused")
		}
		return makeBanners(3), nil
	}
	l := NewList(cfg)

	l.Load(context.Background())
	require.Len(t, l.Filtered(), 3)

	failing = true
	l.Load(context.Background())

	assert.False(t, l.Loading())
	assert.Empty(t, l.Filtered())
	assert.Equal(t, "connection refused", l.Err())
}

func TestListStaleFetchResponseDiscarded(t *testing.T) {
	slowRelease := make(chan struct{})
	slowStarted := make(chan struct{})
	var mu sync.Mutex
	call := 0

	cfg := staticBanners(nil)
	cfg.Fetch = func(ctx context.Context, limit int) ([]Banner, error) {
		mu.Lock()
		call++
		mine := call
		mu.Unlock()

		if mine == 1 {
			close(slowStarted)
			<-slowRelease
			return []Banner{{ID: "stale", Title: "Stale"}}, nil
		}
		return []Banner{{ID: "fresh", Title: "Fresh"}}, nil
	}
	l := NewList(cfg)

	done := make(chan struct{})
	go func() {
		l.Load(context.Background())
		close(done)
	}()
	<-slowStarted

	// A newer load starts and completes while the first is still in flight.
	l.Load(context.Background())
	require.Len(t, l.Filtered(), 1)
	require.Equal(t, "fresh", l.Filtered()[0].ID)

	close(slowRelease)
	<-done

	filtered := l.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "fresh", filtered[0].ID, "the stale response must not overwrite the newer one")
}

func TestListConfirmDeleteRefetches(t *testing.T) {
	items := makeBanners(3)
	deleted := []string{}
	cfg := staticBanners(nil)
	cfg.Fetch = func(ctx context.Context, limit int) ([]Banner, error) {
		remaining := make([]Banner, 0, len(items))
		for _, b := range items {
			keep := true
			for _, id := range deleted {
				if b.ID == id {
					keep = false
				}
			}
			if keep {
				remaining = append(remaining, b)
			}
		}
		return remaining, nil
	}
	cfg.Delete = func(ctx context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}
	l := NewList(cfg)
	l.Load(context.Background())
	require.Len(t, l.Filtered(), 3)

	l.RequestDelete("a")
	require.Equal(t, "a", l.DeleteTarget())

	require.NoError(t, l.ConfirmDelete(context.Background()))
	assert.Empty(t, l.DeleteTarget())
	assert.Len(t, l.Filtered(), 2)
}

func TestListCancelDeleteLeavesCollectionUnchanged(t *testing.T) {
	l := NewList(staticBanners(makeBanners(3)))
	l.Load(context.Background())

	l.RequestDelete("a")
	l.CancelDelete()

	assert.Empty(t, l.DeleteTarget())
	assert.Len(t, l.Filtered(), 3)
	require.NoError(t, l.ConfirmDelete(context.Background()), "confirming with no target is a no-op")
	assert.Len(t, l.Filtered(), 3)
}

func TestListDeleteFailureLeavesCollectionUnchanged(t *testing.T) {
	cfg := staticBanners(makeBanners(3))
	cfg.Delete = func(ctx context.Context, id string) error {
		return &APIError{StatusCode: 500, Message: "boom"}
	}
	l := NewList(cfg)
	l.Load(context.Background())

	l.RequestDelete("a")
	require.Error(t, l.ConfirmDelete(context.Background()))

	assert.Len(t, l.Filtered(), 3)
	assert.Equal(t, "boom", l.Err())
}

func TestListOnSavedCreateReturnsToFirstPage(t *testing.T) {
	l := NewList(staticBanners(makeBanners(20)))
	l.Load(context.Background())

	l.SetPage(3)
	l.OnSaved(context.Background(), true)
	assert.Equal(t, 1, l.Page())

	l.SetPage(2)
	l.OnSaved(context.Background(), false)
	assert.Equal(t, 2, l.Page(), "edits keep the current page")
}
