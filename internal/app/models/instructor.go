package models

import "time"

// Instructor represents a member of the teaching staff.
type Instructor struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	Title          string    `json:"title,omitempty"`
	OfficeLocation string    `json:"officeLocation,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	IsActive       bool      `json:"isActive"`
	IsFullTime     bool      `json:"isFullTime"`
	HireDate       time.Time `json:"hireDate"`
	CreatedDate    time.Time `json:"createdDate"`
	CourseIDs      []string  `json:"courseIds"`
}

// FullName returns the instructor's display name.
func (i *Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}

// Clone returns a deep copy of the instructor. Repositories hand out clones
// so callers cannot mutate stored records without going through Update.
func (i *Instructor) Clone() *Instructor {
	clone := *i
	if i.CourseIDs != nil {
		clone.CourseIDs = make([]string, len(i.CourseIDs))
		copy(clone.CourseIDs, i.CourseIDs)
	}
	return &clone
}

// IsTeaching reports whether the course is listed on this instructor.
func (i *Instructor) IsTeaching(courseID string) bool {
	for _, id := range i.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// AddCourse adds the course to the instructor's back-reference list.
// Returns false if the course was already present.
func (i *Instructor) AddCourse(courseID string) bool {
	if i.IsTeaching(courseID) {
		return false
	}
	i.CourseIDs = append(i.CourseIDs, courseID)
	return true
}

// RemoveCourse removes the course from the back-reference list.
// Returns false if the course was not present.
func (i *Instructor) RemoveCourse(courseID string) bool {
	for idx, id := range i.CourseIDs {
		if id == courseID {
			i.CourseIDs = append(i.CourseIDs[:idx], i.CourseIDs[idx+1:]...)
			return true
		}
	}
	return false
}
