package models

import "time"

// ChangeAction describes what happened to an entity.
type ChangeAction string

const (
	ActionAdded   ChangeAction = "added"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// CourseChange is the payload delivered to course observers after a
// successful mutation. Delivery is synchronous and in-process only.
type CourseChange struct {
	CourseID  string
	Code      string
	Title     string
	Action    ChangeAction
	Timestamp time.Time
}

// InstructorChange is the payload delivered to instructor observers.
// Detail carries a human-readable description for relationship changes,
// e.g. "Assigned to course CS101".
type InstructorChange struct {
	InstructorID string
	Email        string
	Action       ChangeAction
	Detail       string
	Timestamp    time.Time
}
