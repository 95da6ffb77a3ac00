package model

import (
	"strings"
	"time"
	"unicode"
)

// AllCategoryID is the client-side sentinel meaning "no category filter".
// It is never stored.
const AllCategoryID = "all"

const (
	DefaultCategoryIcon  = "📦"
	DefaultCategoryColor = "#6366f1"
)

// Category groups products.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func (c Category) RecordID() string { return c.ID }

// Clone returns c; categories hold no references.
func (c Category) Clone() Category { return c }

// AllCategory is the synthetic entry prepended to filter pickers.
func AllCategory() Category {
	return Category{
		ID:    AllCategoryID,
		Name:  "All Products",
		Slug:  AllCategoryID,
		Icon:  DefaultCategoryIcon,
		Color: DefaultCategoryColor,
	}
}

// CategoryDraft is the body of a category create request.
type CategoryDraft struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

func (d CategoryDraft) Validate() error {
	if isBlank(d.Name) {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if d.Slug == AllCategoryID {
		return &ValidationError{Field: "slug", Reason: "\"all\" is reserved"}
	}
	return nil
}

// Build fills slug, icon and color defaults. Categories carry no timestamps.
func (d CategoryDraft) Build(id string, _ time.Time) Category {
	c := Category{
		ID:          id,
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		Icon:        d.Icon,
		Color:       d.Color,
	}
	if c.Slug == "" {
		c.Slug = Slugify(d.Name)
	}
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return c
}

// CategoryPatch is a partial category.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
}

func (p CategoryPatch) Validate() error {
	if p.Name != nil && isBlank(*p.Name) {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Slug != nil && *p.Slug == AllCategoryID {
		return &ValidationError{Field: "slug", Reason: "\"all\" is reserved"}
	}
	return nil
}

func (p CategoryPatch) Apply(cur Category) Category {
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Slug != nil {
		cur.Slug = *p.Slug
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Icon != nil {
		cur.Icon = *p.Icon
	}
	if p.Color != nil {
		cur.Color = *p.Color
	}
	return cur
}

// Slugify lower-cases s and collapses every run of non-alphanumerics into "-".
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
