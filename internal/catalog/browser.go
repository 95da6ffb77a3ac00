// Package catalog holds the product browsing state behind a home screen:
// the fetched catalog, the active search, category and sort, and the page
// cursor over the result.
package catalog

import (
	"context"
	"fmt"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
	"github.com/fairyhunter13/inventory-task-simulator/internal/paging"
	"github.com/fairyhunter13/inventory-task-simulator/internal/query"
)

// Source is the part of the product façade the browser reads from.
type Source interface {
	Catalog(ctx context.Context, p query.Params) ([]model.ProductWithCategory, []model.Category, error)
}

// Browser filters and pages a locally held catalog. It is not safe for
// concurrent use.
type Browser struct {
	src Source

	products   []model.ProductWithCategory
	categories []model.Category

	search   string
	category string
	sort     query.SortKey

	pager *paging.Paginator[model.ProductWithCategory]
}

// NewBrowser starts with no search, the "all" category and newest first.
func NewBrowser(src Source, pageSize int) *Browser {
	return &Browser{
		src:      src,
		category: model.AllCategoryID,
		sort:     query.SortLatest,
		pager:    paging.New[model.ProductWithCategory](nil, pageSize),
	}
}

// Refresh refetches products and category filters. On failure the previous
// catalog is kept.
func (b *Browser) Refresh(ctx context.Context) error {
	products, cats, err := b.src.Catalog(ctx, query.Params{})
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	b.products, b.categories = products, cats
	b.apply()
	obs.Logger.Debug("catalog_refreshed", "products", len(products), "categories", len(cats))
	return nil
}

func (b *Browser) SetSearch(s string) {
	b.search = s
	b.apply()
}

// SetCategory narrows to one category id. "" and "all" clear the filter.
func (b *Browser) SetCategory(id string) {
	if id == "" {
		id = model.AllCategoryID
	}
	b.category = id
	b.apply()
}

func (b *Browser) SetSort(k query.SortKey) {
	b.sort = k
	b.apply()
}

// GoToPage moves the cursor; out-of-range pages are ignored.
func (b *Browser) GoToPage(n int) bool { return b.pager.GoToPage(n) }
func (b *Browser) Next() bool          { return b.pager.Next() }
func (b *Browser) Prev() bool          { return b.pager.Prev() }

// Categories returns the filter picker entries, "all" first.
func (b *Browser) Categories() []model.Category { return b.categories }

func (b *Browser) Params() query.Params {
	return query.Params{Search: b.search, CategoryID: b.category, SortBy: b.sort}
}

// apply re-runs the query engine and resets the cursor to page 1.
func (b *Browser) apply() {
	b.pager.Reset(query.FilterAndSort(b.products, b.Params()))
}

// View is one rendered page of the catalog.
type View struct {
	Items       []model.ProductWithCategory
	Page        int
	TotalPages  int
	PageNumbers []int
	HasPrev     bool
	HasNext     bool
	Shown       int
	Total       int
}

// Summary is the "Showing X of Y products" caption.
func (v View) Summary() string {
	return fmt.Sprintf("Showing %d of %d products", v.Shown, v.Total)
}

// ShowPagination reports whether page controls are rendered at all.
func (v View) ShowPagination() bool { return v.TotalPages > 1 }

func (b *Browser) Page() View {
	items := b.pager.Items()
	return View{
		Items:       items,
		Page:        b.pager.Page(),
		TotalPages:  b.pager.TotalPages(),
		PageNumbers: b.pager.PageNumbers(),
		HasPrev:     b.pager.HasPrev(),
		HasNext:     b.pager.HasNext(),
		Shown:       len(items),
		Total:       b.pager.Len(),
	}
}
