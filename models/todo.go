package models

// Todo is a personal task item. CompletedAt is set iff Completed is true.
type Todo struct {
	ID        string `json:"_id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`

	// CompletedAt is the completion time in unix milliseconds.
	CompletedAt *int64 `json:"completedAt,omitempty"`

	OwnerID string `json:"_creator"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoCreate is the body accepted when creating a task.
type TodoCreate struct {
	Text string `json:"text"`
}

// TodoUpdate lists the mutable fields of a task. Completion time is derived
// by the server and cannot be supplied.
type TodoUpdate struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// TodoChanges is the storage-level patch for a task. When Completed is set,
// CompletedAt is written along with it (nil clears the column).
type TodoChanges struct {
	Text        *string
	Completed   *bool
	CompletedAt *int64
}
