package model

import (
	"regexp"
	"strings"
	"time"
)

// Priority is a flat enum; there is no transition graph between values.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is applied when no priority is supplied.
const DefaultPriority = PriorityMedium

// ParsePriority matches s case-insensitively. Blank input yields DefaultPriority.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultPriority, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", &ValidationError{Field: "priority", Reason: "must be low, medium, or high"}
}

// Status is the task workflow state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

var statusCycle = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Next returns the cyclic successor. An unknown status restarts the cycle at pending.
func (s Status) Next() Status {
	for i, st := range statusCycle {
		if st == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return statusCycle[0]
}

// ParseStatus accepts one of the three workflow states. Blank input yields pending.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StatusPending, nil
	case StatusPending, StatusInProgress, StatusCompleted:
		return st, nil
	}
	return "", &ValidationError{Field: "status", Reason: "must be pending, in-progress, or completed"}
}

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDueDate checks the YYYY-MM-DD shape only; calendar validity is not checked.
func ValidateDueDate(s string) error {
	if s == "" || dueDatePattern.MatchString(s) {
		return nil
	}
	return &ValidationError{Field: "dueDate", Reason: "must be in YYYY-MM-DD format"}
}

// Task is a tracked to-do item.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	DueDate     string    `json:"dueDate,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (t Task) RecordID() string { return t.ID }

// Clone returns t; tasks hold no references.
func (t Task) Clone() Task { return t }

// TaskDraft is the body of a task create request.
type TaskDraft struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	Status      Status     `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (d TaskDraft) Validate() error {
	if isBlank(d.Title) {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if _, err := ParsePriority(string(d.Priority)); err != nil {
		return err
	}
	if err := ValidateDueDate(d.DueDate); err != nil {
		return err
	}
	_, err := ParseStatus(string(d.Status))
	return err
}

// Build fills defaults: priority medium, status pending, timestamps now.
// Build expects a draft that passed Validate.
func (d TaskDraft) Build(id string, now time.Time) Task {
	pr, _ := ParsePriority(string(d.Priority))
	st, _ := ParseStatus(string(d.Status))
	t := Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Priority:    pr,
		DueDate:     d.DueDate,
		Status:      st,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.CreatedAt != nil {
		t.CreatedAt = *d.CreatedAt
	}
	if d.UpdatedAt != nil {
		t.UpdatedAt = *d.UpdatedAt
	}
	return t
}

// TaskPatch is a partial task.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	DueDate     *string    `json:"dueDate,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (p TaskPatch) Validate() error {
	if p.Title != nil && isBlank(*p.Title) {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if p.Priority != nil {
		if _, err := ParsePriority(string(*p.Priority)); err != nil {
			return err
		}
	}
	if p.DueDate != nil {
		if err := ValidateDueDate(*p.DueDate); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if _, err := ParseStatus(string(*p.Status)); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch over cur. A supplied priority or status is
// normalized; other fields are copied verbatim.
func (p TaskPatch) Apply(cur Task) Task {
	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Priority != nil {
		if pr, err := ParsePriority(string(*p.Priority)); err == nil {
			cur.Priority = pr
		} else {
			cur.Priority = *p.Priority
		}
	}
	if p.DueDate != nil {
		cur.DueDate = *p.DueDate
	}
	if p.Status != nil {
		if st, err := ParseStatus(string(*p.Status)); err == nil {
			cur.Status = st
		} else {
			cur.Status = *p.Status
		}
	}
	if p.CreatedAt != nil {
		cur.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		cur.UpdatedAt = *p.UpdatedAt
	}
	return cur
}
