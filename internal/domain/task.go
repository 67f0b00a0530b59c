package domain

import "strings"

// Task is a unit of work identified by a store-assigned integer id.
// The id never changes after creation; only Text is mutable.
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// NewTask creates a Task with the given id and text.
// Returns ErrEmptyTaskText if the text is blank.
func NewTask(id int64, text string) (*Task, error) {
	task := &Task{
		ID:   id,
		Text: text,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}

	return ValidateTaskText(t.Text)
}

// UpdateText replaces the task's text. The task is left untouched if the
// new text is blank.
func (t *Task) UpdateText(text string) error {
	if err := ValidateTaskText(text); err != nil {
		return err
	}

	t.Text = text
	return nil
}

// infoSeparators are the ASCII file, group, record and unit separators.
// The request validator's notblank tag trims them too.
const infoSeparators = "\x1c\x1d\x1e\x1f"

// IsBlank reports whether text is empty once surrounding whitespace and
// ASCII information separators are trimmed.
func IsBlank(text string) bool {
	return strings.Trim(strings.TrimSpace(text), infoSeparators) == ""
}

// ValidateTaskText reports whether text is acceptable as task text.
func ValidateTaskText(text string) error {
	if IsBlank(text) {
		return ErrEmptyTaskText
	}
	return nil
}
