package repositories

import (
	"context"
	"strings"

	"github.com/academica/registrar/internal/app/models"
	"github.com/academica/registrar/internal/pkg/apperrors"
)

// CourseRepository handles file-backed persistence for courses
type CourseRepository struct {
	coll *jsonCollection[*models.Course]
}

// NewCourseRepository creates a new course repository backed by the given
// JSON file, loading any existing records.
func NewCourseRepository(path string) (*CourseRepository, error) {
	coll, err := newJSONCollection(path, "course", func(c *models.Course) string { return c.ID })
	if err != nil {
		return nil, err
	}
	return &CourseRepository{coll: coll}, nil
}

// GetAll retrieves all courses in insertion order
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	items := r.coll.all()
	courses := make([]*models.Course, len(items))
	for i, course := range items {
		courses[i] = course.Clone()
	}
	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := r.coll.get(id)
	if err != nil {
		return nil, err
	}
	return course.Clone(), nil
}

// GetByCode retrieves a course by its business code, case-insensitively
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	for _, course := range r.coll.items {
		if strings.EqualFold(course.Code, code) {
			return course.Clone(), nil
		}
	}
	return nil, apperrors.NewNotFoundError("course", code)
}

// GetByDepartment retrieves all courses in a department (case-insensitive
// exact match). The result may be empty.
func (r *CourseRepository) GetByDepartment(ctx context.Context, department string) ([]*models.Course, error) {
	var courses []*models.Course
	for _, course := range r.coll.items {
		if strings.EqualFold(course.Department, department) {
			courses = append(courses, course.Clone())
		}
	}
	return courses, nil
}

// GetByInstructor retrieves all courses that list the given instructor
func (r *CourseRepository) GetByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error) {
	var courses []*models.Course
	for _, course := range r.coll.items {
		if course.HasInstructor(instructorID) {
			courses = append(courses, course.Clone())
		}
	}
	return courses, nil
}

// Create adds a new course. A course whose code case-insensitively matches
// an existing one is rejected.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	for _, existing := range r.coll.items {
		if strings.EqualFold(existing.Code, course.Code) {
			return apperrors.NewValidationError(
				"a course with code '" + existing.Code + "' already exists")
		}
	}
	return r.coll.add(course.Clone())
}

// Update replaces the stored course with the same ID wholesale
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	return r.coll.update(course.Clone())
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return r.coll.delete(id)
}

// SaveChanges rewrites the backing file from the in-memory collection
func (r *CourseRepository) SaveChanges(ctx context.Context) error {
	return r.coll.save()
}
