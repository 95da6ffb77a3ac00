package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fairyhunter13/inventory-task-simulator/internal/endpoint"
	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
	"github.com/fairyhunter13/inventory-task-simulator/internal/query"
	"github.com/fairyhunter13/inventory-task-simulator/internal/transport"
)

// TaskService reads and writes tasks and drives the status cycle.
type TaskService struct {
	tr transport.Transport
	o  options
}

func NewTaskService(tr transport.Transport, opts ...Option) *TaskService {
	return &TaskService{tr: tr, o: buildOptions(opts)}
}

// Tasks lists tasks whose title or description contains search.
// A blank search lists every task.
func (s *TaskService) Tasks(ctx context.Context, search string) ([]model.Task, error) {
	var q url.Values
	if strings.TrimSpace(search) != "" {
		q = url.Values{query.KeySearch: {search}}
	}
	var out []model.Task
	if err := s.tr.Get(ctx, endpoint.PathTasks, q, &out); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (s *TaskService) Task(ctx context.Context, id string) (model.Task, error) {
	var out model.Task
	if err := s.tr.Get(ctx, itemPath(endpoint.PathTasks, id), nil, &out); err != nil {
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}
	return out, nil
}

// Create validates d, normalizes its enums and posts it. Nothing is sent when
// validation fails.
func (s *TaskService) Create(ctx context.Context, d model.TaskDraft) (model.Task, error) {
	if err := d.Validate(); err != nil {
		return model.Task{}, err
	}
	d.Title = strings.TrimSpace(d.Title)
	d.Priority, _ = model.ParsePriority(string(d.Priority))
	d.Status, _ = model.ParseStatus(string(d.Status))
	if st, ok := s.o.stamp(s.tr); ok {
		d.ID = st.id
		d.CreatedAt = ptr(st.now)
		d.UpdatedAt = ptr(st.now)
	}
	var out model.Task
	if err := s.tr.Post(ctx, endpoint.PathTasks, d, &out); err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	obs.Logger.Info("resource_created", "resource", "task", "id", out.ID, "transport", s.tr.Kind())
	return out, nil
}

// Update validates and merges p into the task and stamps updatedAt.
func (s *TaskService) Update(ctx context.Context, id string, p model.TaskPatch) (model.Task, error) {
	if err := p.Validate(); err != nil {
		return model.Task{}, err
	}
	if p.Title != nil {
		p.Title = ptr(strings.TrimSpace(*p.Title))
	}
	if p.Priority != nil {
		pr, _ := model.ParsePriority(string(*p.Priority))
		p.Priority = &pr
	}
	if p.Status != nil {
		st, _ := model.ParseStatus(string(*p.Status))
		p.Status = &st
	}
	p.UpdatedAt = ptr(s.o.now().UTC())
	var out model.Task
	if err := s.tr.Put(ctx, itemPath(endpoint.PathTasks, id), p, &out); err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	return out, nil
}

// ToggleStatus advances the task one step along
// pending -> in-progress -> completed -> pending.
func (s *TaskService) ToggleStatus(ctx context.Context, id string) (model.Task, error) {
	cur, err := s.Task(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	next := cur.Status.Next()
	out, err := s.Update(ctx, id, model.TaskPatch{Status: &next})
	if err != nil {
		return model.Task{}, err
	}
	obs.Logger.Info("task_status_changed", "id", id, "from", cur.Status, "to", next)
	return out, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.tr.Delete(ctx, itemPath(endpoint.PathTasks, id), nil); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	obs.Logger.Info("resource_deleted", "resource", "task", "id", id)
	return nil
}
