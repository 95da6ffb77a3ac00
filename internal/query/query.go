// Package query filters and orders product listings.
package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
)

// SortKey selects the listing order.
type SortKey string

const (
	SortLatest    SortKey = "latest"
	SortOldest    SortKey = "oldest"
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// SortKeys lists the supported keys in display order.
var SortKeys = []SortKey{SortLatest, SortOldest, SortName, SortPriceAsc, SortPriceDesc}

// Item is satisfied by model.Product and by every type embedding it.
type Item interface {
	AsProduct() model.Product
}

// Params narrows and orders a listing. Page and Limit are only consumed by
// callers that window the result.
type Params struct {
	Search     string
	CategoryID string
	LowStock   bool
	SortBy     SortKey
	Page       int
	Limit      int
}

// FilterAndSort returns a new slice holding the items that pass the category,
// text and low-stock filters, stably ordered by p.SortBy. An unknown sort key
// keeps the input order.
func FilterAndSort[T Item](items []T, p Params) []T {
	needle := ""
	if strings.TrimSpace(p.Search) != "" {
		// Only blank input is ignored; surrounding spaces are part of the needle.
		needle = strings.ToLower(p.Search)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		prod := it.AsProduct()
		if !matchesCategory(prod, p.CategoryID) {
			continue
		}
		if needle != "" && !matchesText(prod, needle) {
			continue
		}
		if p.LowStock && !prod.IsLowStock() {
			continue
		}
		out = append(out, it)
	}
	if less := comparator[T](p.SortBy); less != nil {
		slices.SortStableFunc(out, less)
	}
	return out
}

func matchesCategory(p model.Product, categoryID string) bool {
	if categoryID == "" || categoryID == model.AllCategoryID {
		return true
	}
	return p.CategoryID != nil && *p.CategoryID == categoryID
}

func matchesText(p model.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
}

func comparator[T Item](key SortKey) func(a, b T) int {
	switch key {
	case SortLatest:
		return func(a, b T) int { return b.AsProduct().CreatedAt.Compare(a.AsProduct().CreatedAt) }
	case SortOldest:
		return func(a, b T) int { return a.AsProduct().CreatedAt.Compare(b.AsProduct().CreatedAt) }
	case SortName:
		// Collators keep scratch buffers, so each sort gets its own.
		c := collate.New(language.English)
		return func(a, b T) int { return c.CompareString(a.AsProduct().Name, b.AsProduct().Name) }
	case SortPriceAsc:
		return func(a, b T) int { return a.AsProduct().Price.Cmp(b.AsProduct().Price) }
	case SortPriceDesc:
		return func(a, b T) int { return b.AsProduct().Price.Cmp(a.AsProduct().Price) }
	}
	return nil
}

// FilterTasks keeps tasks whose title or description contains search,
// case-insensitively. Blank search returns a copy of tasks.
func FilterTasks(tasks []model.Task, search string) []model.Task {
	if strings.TrimSpace(search) == "" {
		return slices.Clone(tasks)
	}
	needle := strings.ToLower(search)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}

// CompareNames orders names the way SortName does.
func CompareNames(a, b string) int {
	return collate.New(language.English).CompareString(a, b)
}
