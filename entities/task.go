package entities

import "time"

type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case High, Medium, Low:
		return true
	}
	return false
}

type Task struct {
	ID          int      `json:"Id"`
	FarmID      int      `json:"farmId"`
	CropID      *int     `json:"cropId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
}

type TaskForm struct {
	FarmID      FormValue `json:"farmId"`
	CropID      FormValue `json:"cropId"` // optional; blank means no crop
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
}

func (t Task) Form() TaskForm {
	f := TaskForm{
		FarmID:      IntValue(t.FarmID),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Completed:   t.Completed,
	}
	if t.CropID != nil {
		f.CropID = IntValue(*t.CropID)
	}
	return f
}

// Overdue reports whether the task is still open past its due date.
// An unparseable due date is never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, err := ParseDate(t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}
