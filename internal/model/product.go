// Package model defines the records served by the resource layer and the
// error kinds shared by every transport.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit is used when a product is created without a unit.
const DefaultUnit = "pcs"

// Product is a stocked catalog item.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockSystem   int             `json:"stockSystem"`
	StockPhysical int             `json:"stockPhysical"`
	MinStock      int             `json:"minStock"`
	Unit          string          `json:"unit"`
	CategoryID    *string         `json:"categoryId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt,omitzero"`
}

// RecordID implements store.Record.
func (p Product) RecordID() string { return p.ID }

// Clone returns a copy that shares no pointers with p.
func (p Product) Clone() Product {
	p.Description = clonePtr(p.Description)
	p.CategoryID = clonePtr(p.CategoryID)
	return p
}

// AsProduct lets Product and types embedding it share the query engine.
func (p Product) AsProduct() Product { return p }

// IsLowStock reports whether the tracked stock is at or below the reorder threshold.
func (p Product) IsLowStock() bool { return p.StockSystem <= p.MinStock }

// StockStatus derives the display label from the tracked stock.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.StockSystem <= 0:
		return StockOut
	case p.StockSystem <= p.MinStock:
		return StockLow
	default:
		return StockIn
	}
}

// ShowLowStockWarning is true while stock is positive but at or below minStock.
func (p Product) ShowLowStockWarning() bool {
	return p.StockSystem > 0 && p.StockSystem <= p.MinStock
}

// StockStatus is the label shown next to a product.
type StockStatus string

const (
	StockOut StockStatus = "Out of Stock"
	StockLow StockStatus = "Low Stock"
	StockIn  StockStatus = "In Stock"
)

// ProductWithCategory is a product joined with its resolved category.
type ProductWithCategory struct {
	Product
	Category *Category `json:"category,omitempty"`
}

// CategoryName returns the joined category name or "Uncategorized".
func (p ProductWithCategory) CategoryName() string {
	if p.Category == nil {
		return "Uncategorized"
	}
	return p.Category.Name
}

// ProductDraft is the body of a product create request.
type ProductDraft struct {
	ID            string          `json:"id,omitempty"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockSystem   int             `json:"stockSystem"`
	StockPhysical *int            `json:"stockPhysical,omitempty"`
	MinStock      int             `json:"minStock"`
	Unit          string          `json:"unit,omitempty"`
	CategoryID    *string         `json:"categoryId,omitempty"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// Validate checks the fields a store must never accept.
func (d ProductDraft) Validate() error {
	if isBlank(d.Name) {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if d.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must be >= 0"}
	}
	if d.CategoryID != nil && *d.CategoryID == AllCategoryID {
		return &ValidationError{Field: "categoryId", Reason: "\"all\" is not a category"}
	}
	return nil
}

// Build assigns id and fills the documented defaults. Any client supplied
// ID is ignored.
func (d ProductDraft) Build(id string, now time.Time) Product {
	p := Product{
		ID:            id,
		Name:          d.Name,
		Description:   clonePtr(d.Description),
		Price:         d.Price,
		StockSystem:   d.StockSystem,
		StockPhysical: d.StockSystem,
		MinStock:      d.MinStock,
		Unit:          d.Unit,
		CategoryID:    clonePtr(d.CategoryID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if d.StockPhysical != nil {
		p.StockPhysical = *d.StockPhysical
	}
	if p.Unit == "" {
		p.Unit = DefaultUnit
	}
	if d.CreatedAt != nil {
		p.CreatedAt = *d.CreatedAt
	}
	if d.UpdatedAt != nil {
		p.UpdatedAt = *d.UpdatedAt
	}
	return p
}

// ProductPatch is a partial product. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockSystem   *int             `json:"stockSystem,omitempty"`
	StockPhysical *int             `json:"stockPhysical,omitempty"`
	MinStock      *int             `json:"minStock,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	CategoryID    *string          `json:"categoryId,omitempty"`
	CreatedAt     *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
}

// Validate rejects values that would break a stored product.
func (p ProductPatch) Validate() error {
	if p.Name != nil && isBlank(*p.Name) {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Price != nil && p.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must be >= 0"}
	}
	if p.CategoryID != nil && *p.CategoryID == AllCategoryID {
		return &ValidationError{Field: "categoryId", Reason: "\"all\" is not a category"}
	}
	return nil
}

// Apply merges the patch over cur and returns the result.
func (p ProductPatch) Apply(cur Product) Product {
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Description != nil {
		cur.Description = ptrTo(*p.Description)
	}
	if p.Price != nil {
		cur.Price = *p.Price
	}
	if p.StockSystem != nil {
		cur.StockSystem = *p.StockSystem
	}
	if p.StockPhysical != nil {
		cur.StockPhysical = *p.StockPhysical
	}
	if p.MinStock != nil {
		cur.MinStock = *p.MinStock
	}
	if p.Unit != nil {
		cur.Unit = *p.Unit
	}
	if p.CategoryID != nil {
		cur.CategoryID = ptrTo(*p.CategoryID)
	}
	if p.CreatedAt != nil {
		cur.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		cur.UpdatedAt = *p.UpdatedAt
	}
	return cur
}

func ptrTo[T any](v T) *T { return &v }

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	return ptrTo(*v)
}
