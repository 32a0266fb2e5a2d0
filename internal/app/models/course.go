package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Credits       int       `json:"credits"`
	MaxEnrollment int       `json:"maxEnrollment"`
	Department    string    `json:"department"`
	InstructorIDs []string  `json:"instructorIds"`
	CreatedDate   time.Time `json:"createdDate"`
}

// Clone returns a deep copy of the course. Repositories hand out clones so
// callers cannot mutate stored records without going through Update.
func (c *Course) Clone() *Course {
	clone := *c
	if c.InstructorIDs != nil {
		clone.InstructorIDs = make([]string, len(c.InstructorIDs))
		copy(clone.InstructorIDs, c.InstructorIDs)
	}
	return &clone
}

// HasInstructor reports whether the instructor is listed on this course.
func (c *Course) HasInstructor(instructorID string) bool {
	for _, id := range c.InstructorIDs {
		if id == instructorID {
			return true
		}
	}
	return false
}

// AddInstructor adds the instructor to the course's back-reference list.
// Returns false if the instructor was already present.
func (c *Course) AddInstructor(instructorID string) bool {
	if c.HasInstructor(instructorID) {
		return false
	}
	c.InstructorIDs = append(c.InstructorIDs, instructorID)
	return true
}

// RemoveInstructor removes the instructor from the back-reference list.
// Returns false if the instructor was not present.
func (c *Course) RemoveInstructor(instructorID string) bool {
	for i, id := range c.InstructorIDs {
		if id == instructorID {
			c.InstructorIDs = append(c.InstructorIDs[:i], c.InstructorIDs[i+1:]...)
			return true
		}
	}
	return false
}
