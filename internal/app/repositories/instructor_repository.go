package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/academica/registrar/internal/app/models"
	"github.com/academica/registrar/internal/pkg/apperrors"
)

// MaxCourseLoad is the maximum number of courses an instructor may be
// assigned at the same time.
const MaxCourseLoad = 4

// InstructorRepository handles file-backed persistence for instructors
type InstructorRepository struct {
	coll *jsonCollection[*models.Instructor]
}

// NewInstructorRepository creates a new instructor repository backed by the
// given JSON file, loading any existing records.
func NewInstructorRepository(path string) (*InstructorRepository, error) {
	coll, err := newJSONCollection(path, "instructor", func(i *models.Instructor) string { return i.ID })
	if err != nil {
		return nil, err
	}
	return &InstructorRepository{coll: coll}, nil
}

// GetAll retrieves all instructors in insertion order
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	items := r.coll.all()
	instructors := make([]*models.Instructor, len(items))
	for i, instructor := range items {
		instructors[i] = instructor.Clone()
	}
	return instructors, nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	instructor, err := r.coll.get(id)
	if err != nil {
		return nil, err
	}
	return instructor.Clone(), nil
}

// GetByEmail retrieves an instructor by email, case-insensitively
func (r *InstructorRepository) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	for _, instructor := range r.coll.items {
		if strings.EqualFold(instructor.Email, email) {
			return instructor.Clone(), nil
		}
	}
	return nil, apperrors.NewNotFoundError("instructor", email)
}

// GetByDepartment retrieves all instructors in a department (case-insensitive
// exact match). The result may be empty.
func (r *InstructorRepository) GetByDepartment(ctx context.Context, department string) ([]*models.Instructor, error) {
	var instructors []*models.Instructor
	for _, instructor := range r.coll.items {
		if strings.EqualFold(instructor.Department, department) {
			instructors = append(instructors, instructor.Clone())
		}
	}
	return instructors, nil
}

// GetByCourse retrieves all instructors that list the given course
func (r *InstructorRepository) GetByCourse(ctx context.Context, courseID string) ([]*models.Instructor, error) {
	var instructors []*models.Instructor
	for _, instructor := range r.coll.items {
		if instructor.IsTeaching(courseID) {
			instructors = append(instructors, instructor.Clone())
		}
	}
	return instructors, nil
}

// Create adds a new instructor
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	return r.coll.add(instructor.Clone())
}

// Update replaces the stored instructor with the same ID wholesale
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	return r.coll.update(instructor.Clone())
}

// Delete removes an instructor by ID
func (r *InstructorRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(id)
}

// AssignToCourse records the course on the instructor's side of the
// relationship. Returns false without writing when the link already exists.
// Fails validation when the instructor is already at the maximum course load.
func (r *InstructorRepository) AssignToCourse(ctx context.Context, instructorID, courseID string) (bool, error) {
	instructor, err := r.coll.get(instructorID)
	if err != nil {
		return false, err
	}

	if instructor.IsTeaching(courseID) {
		return false, nil
	}

	if len(instructor.CourseIDs) >= MaxCourseLoad {
		return false, apperrors.NewValidationError(fmt.Sprintf(
			"instructor '%s' already has the maximum of %d assigned courses",
			instructor.Email, MaxCourseLoad))
	}

	instructor.AddCourse(courseID)
	if err := r.coll.save(); err != nil {
		instructor.RemoveCourse(courseID)
		return false, err
	}
	return true, nil
}

// RemoveFromCourse removes the course from the instructor's side of the
// relationship. Returns false without writing when the link is absent.
func (r *InstructorRepository) RemoveFromCourse(ctx context.Context, instructorID, courseID string) (bool, error) {
	instructor, err := r.coll.get(instructorID)
	if err != nil {
		return false, err
	}

	if !instructor.RemoveCourse(courseID) {
		return false, nil
	}

	if err := r.coll.save(); err != nil {
		instructor.AddCourse(courseID)
		return false, err
	}
	return true, nil
}

// IsAssignedToCourse reports whether the instructor lists the course.
// Pure read, no writes.
func (r *InstructorRepository) IsAssignedToCourse(ctx context.Context, instructorID, courseID string) (bool, error) {
	instructor, err := r.coll.get(instructorID)
	if err != nil {
		return false, err
	}
	return instructor.IsTeaching(courseID), nil
}

// SaveChanges rewrites the backing file from the in-memory collection
func (r *InstructorRepository) SaveChanges(ctx context.Context) error {
	return r.coll.save()
}
