package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/academica/registrar/internal/app/models"
	"github.com/academica/registrar/internal/app/repositories"
	"github.com/academica/registrar/internal/pkg/apperrors"
	"github.com/academica/registrar/internal/pkg/validation"
)

// Course field bounds
const (
	MinCredits = 1
	MaxCredits = 12

	MinEnrollment = 1
	// MaxEnrollment is the canonical bound. The original console prompts
	// clamped to 300 while the service allowed 500; 500 wins and the
	// console does not re-clamp.
	MaxEnrollment = 500

	CodeMaxLength        = 20
	TitleMaxLength       = 200
	DescriptionMaxLength = 2000
	DepartmentMaxLength  = 100
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	GetCoursesByDepartment(ctx context.Context, department string) ([]*models.Course, error)
	GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id string) error

	// OnCourseChanged registers a synchronous observer. Observers run in
	// registration order before the mutating call returns; they are not
	// isolated from the caller.
	OnCourseChanged(fn func(models.CourseChange))
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	observers  []func(models.CourseChange)
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

// validateCourse validates course data, aggregating every violated rule
// into a single validation error.
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	messages := validation.Collect(
		validation.String("code", course.Code).Required().MaxLength(CodeMaxLength),
		validation.String("title", course.Title).Required().MaxLength(TitleMaxLength),
		validation.String("department", course.Department).Required().MaxLength(DepartmentMaxLength),
		validation.String("description", course.Description).MaxLength(DescriptionMaxLength),
		validation.Int("credits", course.Credits).Between(MinCredits, MaxCredits),
		validation.Int("maxEnrollment", course.MaxEnrollment).Between(MinEnrollment, MaxEnrollment),
	)
	if len(messages) > 0 {
		return apperrors.NewValidationError(messages...)
	}
	return nil
}

// checkCodeConflict verifies that no other course holds the given code.
// A not-found lookup is the success path.
func (s *courseServiceImpl) checkCodeConflict(ctx context.Context, code, selfID string) error {
	existing, err := s.courseRepo.GetByCode(ctx, code)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewValidationError(
			fmt.Sprintf("a course with code '%s' already exists", existing.Code))
	}
	return nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	return courses, classify("get all courses", err)
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewInvalidArgumentError("course ID")
	}
	course, err := s.courseRepo.GetByID(ctx, id)
	return course, classify("get course by ID", err)
}

// GetCourseByCode retrieves a course by its business code
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperrors.NewInvalidArgumentError("course code")
	}
	course, err := s.courseRepo.GetByCode(ctx, code)
	return course, classify("get course by code", err)
}

// GetCoursesByDepartment retrieves all courses in a department
func (s *courseServiceImpl) GetCoursesByDepartment(ctx context.Context, department string) ([]*models.Course, error) {
	if strings.TrimSpace(department) == "" {
		return nil, apperrors.NewInvalidArgumentError("department")
	}
	courses, err := s.courseRepo.GetByDepartment(ctx, department)
	return courses, classify("get courses by department", err)
}

// GetCoursesByInstructor retrieves all courses that list the instructor
func (s *courseServiceImpl) GetCoursesByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error) {
	if strings.TrimSpace(instructorID) == "" {
		return nil, apperrors.NewInvalidArgumentError("instructor ID")
	}
	courses, err := s.courseRepo.GetByInstructor(ctx, instructorID)
	return courses, classify("get courses by instructor", err)
}

// CreateCourse validates and persists a new course, assigning its identity
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, apperrors.NewInvalidArgumentError("course")
	}
	if err := s.validateCourse(course); err != nil {
		return nil, classify("create course", err)
	}
	if err := s.checkCodeConflict(ctx, course.Code, ""); err != nil {
		return nil, classify("create course", err)
	}

	course.ID = uuid.NewString()
	course.CreatedDate = time.Now().UTC()
	if course.InstructorIDs == nil {
		course.InstructorIDs = []string{}
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, classify("create course", err)
	}

	s.notify(models.CourseChange{
		CourseID:  course.ID,
		Code:      course.Code,
		Title:     course.Title,
		Action:    models.ActionAdded,
		Timestamp: time.Now().UTC(),
	})
	return course, nil
}

// UpdateCourse validates and replaces an existing course wholesale
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course == nil {
		return apperrors.NewInvalidArgumentError("course")
	}
	if err := s.validateCourse(course); err != nil {
		return classify("update course", err)
	}

	existing, err := s.courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		return classify("update course", err)
	}
	if err := s.checkCodeConflict(ctx, course.Code, course.ID); err != nil {
		return classify("update course", err)
	}

	// CreatedDate is immutable; carry it over regardless of the input.
	course.CreatedDate = existing.CreatedDate

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return classify("update course", err)
	}

	s.notify(models.CourseChange{
		CourseID:  course.ID,
		Code:      course.Code,
		Title:     course.Title,
		Action:    models.ActionUpdated,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// DeleteCourse removes a course. Instructors referencing the course keep
// its ID in their CourseIDs; there is no deletion cascade.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewInvalidArgumentError("course ID")
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return classify("delete course", err)
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return classify("delete course", err)
	}

	s.notify(models.CourseChange{
		CourseID:  course.ID,
		Code:      course.Code,
		Title:     course.Title,
		Action:    models.ActionDeleted,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// OnCourseChanged registers an observer for course mutations
func (s *courseServiceImpl) OnCourseChanged(fn func(models.CourseChange)) {
	s.observers = append(s.observers, fn)
}

func (s *courseServiceImpl) notify(change models.CourseChange) {
	for _, fn := range s.observers {
		fn(change)
	}
}
