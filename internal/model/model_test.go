package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCycle(t *testing.T) {
	s := StatusPending
	s = s.Next()
	assert.Equal(t, StatusInProgress, s)
	s = s.Next()
	assert.Equal(t, StatusCompleted, s)
	s = s.Next()
	assert.Equal(t, StatusPending, s)

	assert.Equal(t, StatusPending, Status("archived").Next())
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"", PriorityMedium, false},
		{"  ", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"HIGH", PriorityHigh, false},
		{"Medium", PriorityMedium, false},
		{"urgent", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePriority(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateDueDate(t *testing.T) {
	assert.NoError(t, ValidateDueDate(""))
	assert.NoError(t, ValidateDueDate("2024-07-15"))
	assert.NoError(t, ValidateDueDate("2024-13-40"), "only the shape is checked")
	assert.ErrorIs(t, ValidateDueDate("15-07-2024"), ErrValidation)
	assert.ErrorIs(t, ValidateDueDate("2024-07-15T00:00:00Z"), ErrValidation)
}

func TestTaskDraftBuildDefaults(t *testing.T) {
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	d := TaskDraft{Title: "Restock shelf", Priority: "HIGH"}
	require.NoError(t, d.Validate())

	got := d.Build("42", now)
	assert.Equal(t, Task{
		ID:        "42",
		Title:     "Restock shelf",
		Priority:  PriorityHigh,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, got)
}

func TestTaskDraftValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft TaskDraft
		field string
	}{
		{"blank title", TaskDraft{Title: "   "}, "title"},
		{"bad priority", TaskDraft{Title: "x", Priority: "urgent"}, "priority"},
		{"bad due date", TaskDraft{Title: "x", DueDate: "15-07-2024"}, "dueDate"},
		{"bad status", TaskDraft{Title: "x", Status: "done"}, "status"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestTaskPatchApplyOnlyTouchesSetFields(t *testing.T) {
	cur := Task{ID: "1", Title: "a", Description: "d", Priority: PriorityLow, Status: StatusPending}
	st := Status("done")
	got := TaskPatch{Status: &st}.Apply(cur)

	want := cur
	want.Status = "done"
	assert.Equal(t, want, got)
	assert.Equal(t, StatusPending, cur.Status, "input is not modified")
}

func TestTaskPatchApplyNormalizesStatus(t *testing.T) {
	cur := Task{ID: "1", Status: StatusPending}
	st := Status(" COMPLETED ")
	require.NoError(t, TaskPatch{Status: &st}.Validate())

	got := TaskPatch{Status: &st}.Apply(cur)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, StatusPending, got.Status.Next())
}

func TestProductCloneDetachesPointers(t *testing.T) {
	p := Product{ID: "1", Description: ptrTo("a"), CategoryID: ptrTo("2")}
	c := p.Clone()
	*c.Description = "b"
	*c.CategoryID = "3"
	assert.Equal(t, "a", *p.Description)
	assert.Equal(t, "2", *p.CategoryID)
	assert.Nil(t, Product{}.Clone().Description)
}

func TestProductStockStatus(t *testing.T) {
	tests := []struct {
		stock, min int
		want       StockStatus
		warn       bool
	}{
		{0, 5, StockOut, false},
		{-3, 5, StockOut, false},
		{5, 5, StockLow, true},
		{2, 5, StockLow, true},
		{6, 5, StockIn, false},
	}
	for _, tc := range tests {
		p := Product{StockSystem: tc.stock, MinStock: tc.min}
		assert.Equal(t, tc.want, p.StockStatus(), "stock=%d min=%d", tc.stock, tc.min)
		assert.Equal(t, tc.warn, p.ShowLowStockWarning(), "stock=%d min=%d", tc.stock, tc.min)
	}
}

func TestProductDraftBuild(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	d := ProductDraft{Name: "Gloves", Price: decimal.NewFromInt(15000), StockSystem: 12, MinStock: 4}
	require.NoError(t, d.Validate())

	p := d.Build("p-1", now)
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, 12, p.StockPhysical)
	assert.Equal(t, DefaultUnit, p.Unit)
	assert.Equal(t, now, p.CreatedAt)
	assert.Nil(t, p.CategoryID)
}

func TestProductDraftRejectsSentinelCategory(t *testing.T) {
	all := AllCategoryID
	err := ProductDraft{Name: "x", CategoryID: &all}.Validate()
	assert.ErrorIs(t, err, ErrValidation)

	err = ProductDraft{Name: "x", Price: decimal.NewFromInt(-1)}.Validate()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hair-care", Slugify("Hair Care"))
	assert.Equal(t, "nails-tools", Slugify("  Nails & Tools!  "))
	assert.Equal(t, "", Slugify("---"))
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(&NotFoundError{Resource: "tasks", ID: "9"}, ErrNotFound))
	assert.True(t, errors.Is(&UnknownEndpointError{Method: "GET", URL: "/widgets"}, ErrUnknownEndpoint))
	inner := errors.New("connection refused")
	te := &TransportError{Op: "GET", URL: "http://x/tasks", Err: inner}
	assert.ErrorIs(t, te, ErrTransport)
	assert.ErrorIs(t, te, inner)
	assert.EqualError(t, &UnknownEndpointError{Method: "GET", URL: "/widgets"}, "unknown GET endpoint: /widgets")
}
