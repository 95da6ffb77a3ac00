package query

import (
	"net/url"
	"strconv"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
)

// Query string keys understood by GET /products.
const (
	KeySearch     = "search"
	KeyCategoryID = "categoryId"
	KeyLowStock   = "lowStock"
	KeySortBy     = "sortBy"
	KeyPage       = "page"
	KeyLimit      = "limit"
)

// ParseParams reads the product listing grammar from a query string.
// Malformed booleans or integers are validation errors.
func ParseParams(v url.Values) (Params, error) {
	p := Params{
		Search:     v.Get(KeySearch),
		CategoryID: v.Get(KeyCategoryID),
		SortBy:     SortKey(v.Get(KeySortBy)),
	}
	if s := v.Get(KeyLowStock); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Params{}, &model.ValidationError{Field: KeyLowStock, Reason: "must be a boolean"}
		}
		p.LowStock = b
	}
	var err error
	if p.Page, err = parseCount(v, KeyPage); err != nil {
		return Params{}, err
	}
	if p.Limit, err = parseCount(v, KeyLimit); err != nil {
		return Params{}, err
	}
	return p, nil
}

func parseCount(v url.Values, key string) (int, error) {
	s := v.Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, &model.ValidationError{Field: key, Reason: "must be a non-negative integer"}
	}
	return n, nil
}

// Values encodes p, omitting zero fields.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Search != "" {
		v.Set(KeySearch, p.Search)
	}
	if p.CategoryID != "" {
		v.Set(KeyCategoryID, p.CategoryID)
	}
	if p.LowStock {
		v.Set(KeyLowStock, "true")
	}
	if p.SortBy != "" {
		v.Set(KeySortBy, string(p.SortBy))
	}
	if p.Page > 0 {
		v.Set(KeyPage, strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set(KeyLimit, strconv.Itoa(p.Limit))
	}
	return v
}
