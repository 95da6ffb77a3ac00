package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
)

var fixedNow = time.Date(2024, 7, 15, 8, 30, 0, 0, time.UTC)

func newTaskStore(seed ...model.Task) *Store[model.Task] {
	return New("task", seed, WithClock(func() time.Time { return fixedNow }))
}

func TestStoreSeedIsCopied(t *testing.T) {
	seed := []model.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}
	s := newTaskStore(seed...)

	require.NoError(t, s.Remove("1"))
	_, err := s.Update("2", model.TaskPatch{Title: ptr("changed")})
	require.NoError(t, err)

	assert.Equal(t, "a", seed[0].Title)
	assert.Equal(t, "b", seed[1].Title)
}

func TestStoreProductPointersAreNotShared(t *testing.T) {
	seed := []model.Product{{ID: "1", Name: "Clay Mask", Description: ptr("kaolin"), CategoryID: ptr("2")}}
	s := New("product", seed)

	got, err := s.Get("1")
	require.NoError(t, err)
	*got.Description = "changed by caller"
	*got.CategoryID = "3"

	list := s.List()
	*list[0].Description = "changed via list"

	stored, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "kaolin", *stored.Description)
	assert.Equal(t, "2", *stored.CategoryID)
	assert.Equal(t, "kaolin", *seed[0].Description)

	*seed[0].Description = "changed seed"
	stored, err = s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "kaolin", *stored.Description)

	desc := "unscented"
	created := s.Insert(model.ProductDraft{Name: "Cotton Pads", Description: &desc})
	desc = "scented"
	updated, err := s.Update(created.ID, model.ProductPatch{MinStock: ptr(4)})
	require.NoError(t, err)
	*updated.Description = "changed after update"

	stored, err = s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "unscented", *stored.Description)
	assert.Equal(t, 4, stored.MinStock)
}

func TestStoreListIsInsertionOrderedCopy(t *testing.T) {
	s := newTaskStore(model.Task{ID: "1"}, model.Task{ID: "2"})
	s.Insert(model.TaskDraft{Title: "third"})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
	assert.Equal(t, "third", list[2].Title)

	list[0].Title = "mutated"
	got, err := s.Get("1")
	require.NoError(t, err)
	assert.Empty(t, got.Title)
}

func TestStoreInsertThenGet(t *testing.T) {
	s := newTaskStore()
	created := s.Insert(model.TaskDraft{Title: "Count stock"})

	assert.Equal(t, "1721032200000", created.ID)
	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Task{
		ID:        created.ID,
		Title:     "Count stock",
		Priority:  model.PriorityMedium,
		Status:    model.StatusPending,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}, got)
}

func TestStoreInsertGeneratesDistinctIDs(t *testing.T) {
	s := newTaskStore()
	a := s.Insert(model.TaskDraft{Title: "a"})
	b := s.Insert(model.TaskDraft{Title: "b"})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStoreUpdateMergesOnlyGivenFields(t *testing.T) {
	s := newTaskStore(model.Task{
		ID: "7", Title: "Order gloves", Description: "nitrile", Priority: model.PriorityHigh,
		DueDate: "2024-08-01", Status: model.StatusPending, CreatedAt: fixedNow,
	})
	before, err := s.Get("7")
	require.NoError(t, err)

	done := model.Status("done")
	updated, err := s.Update("7", model.TaskPatch{Status: &done})
	require.NoError(t, err)

	after, err := s.Get("7")
	require.NoError(t, err)
	assert.Equal(t, updated, after)

	want := before
	want.Status = "done"
	assert.Equal(t, want, after)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt, "update time is not stamped by the store")
}

func TestStoreRemove(t *testing.T) {
	s := newTaskStore(model.Task{ID: "1"}, model.Task{ID: "2"})
	require.NoError(t, s.Remove("1"))
	assert.Equal(t, 1, s.Len())

	_, err := s.Get("1")
	require.ErrorIs(t, err, model.ErrNotFound)

	var nf *model.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "task", nf.Resource)
	assert.Equal(t, "1", nf.ID)
}

func TestStoreNotFound(t *testing.T) {
	s := newTaskStore(model.Task{ID: "10"})

	_, err := s.Get("1")
	assert.ErrorIs(t, err, model.ErrNotFound, "ids match exactly, not by prefix")
	_, err = s.Update("999", model.TaskPatch{})
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, s.Remove("999"), model.ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestStoreConcurrentInserts(t *testing.T) {
	s := New[model.Task]("task", nil)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Insert(model.TaskDraft{Title: "t"})
		}()
	}
	wg.Wait()

	ids := make(map[string]struct{})
	for _, task := range s.List() {
		ids[task.ID] = struct{}{}
	}
	assert.Len(t, ids, 100)
}

func ptr[T any](v T) *T { return &v }
