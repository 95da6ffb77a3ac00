package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/inventory-task-simulator/internal/config"
	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	a, err := newApp(config.Config{MockAPI: true, PageSize: 6}, &buf)
	require.NoError(t, err)
	return a, &buf
}

func TestBrowseProducts(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.run(context.Background(), []string{"products", "-category", "2", "-sort", "price-asc"}))

	s := out.String()
	assert.Contains(t, s, "Nail File 180/240")
	assert.Contains(t, s, "Rp 8.000")
	assert.Contains(t, s, "Showing 4 of 4 products")
	assert.NotContains(t, s, "Page ")
}

func TestBrowseProductsPaging(t *testing.T) {
	a, out := newTestApp(t)
	require.NoError(t, a.run(context.Background(), []string{"products", "-page", "3"}))
	assert.Contains(t, out.String(), "Showing 1 of 13 products")
	assert.Contains(t, out.String(), "Page 3 of 3 [1 2 3]")

	out.Reset()
	require.NoError(t, a.run(context.Background(), []string{"products", "-page", "9"}))
	assert.Contains(t, out.String(), "page 9 is out of range")
	assert.Contains(t, out.String(), "Page 1 of 3")
}

func TestProductCommands(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, []string{"product", "9"}))
	assert.Contains(t, out.String(), "Clay Mask")
	assert.Contains(t, out.String(), "Stock is running low!")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"product-update", "9", "-stock", "20"}))
	assert.Contains(t, out.String(), "In Stock")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"product-add", "-name", "Hair Clips", "-price", "12000", "-stock", "40"}))
	assert.Contains(t, out.String(), "Rp 12.000")
	assert.Contains(t, out.String(), "40 system / 40 physical pcs")

	require.NoError(t, a.run(ctx, []string{"product-rm", "9"}))
	err := a.run(ctx, []string{"product", "9"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestTaskCommands(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, []string{"task-toggle", "1"}))
	assert.Contains(t, out.String(), "Task 1 is now in progress")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"tasks", "-search", "supplier"}))
	assert.Contains(t, out.String(), "Reorder keratin masks")
	assert.NotContains(t, out.String(), "Clean nail station")

	err := a.run(ctx, []string{"task-add", "-title", "x", "-priority", "urgent"})
	assert.ErrorIs(t, err, model.ErrValidation)

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"task-update", "-status", "completed", "2"}))
	assert.Contains(t, out.String(), "completed")
}

func TestCategoryCommands(t *testing.T) {
	a, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, []string{"category-add", "-name", "Salon Tools"}))
	assert.Contains(t, out.String(), "(salon-tools)")

	err := a.run(ctx, []string{"category-rm", "all"})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestRunErrors(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, a.run(ctx, nil), errUsage)
	assert.ErrorContains(t, a.run(ctx, []string{"frobnicate"}), "unknown command")
	assert.ErrorContains(t, a.run(ctx, []string{"task-rm"}), "missing <id>")
	assert.ErrorIs(t, a.run(ctx, []string{"task", "999"}), model.ErrNotFound)
}
