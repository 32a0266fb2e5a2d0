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

// NameMaxLength caps instructor name and department fields.
const NameMaxLength = 100

// InstructorService defines the interface for instructor-related operations,
// including the relationship operations that span both repositories.
type InstructorService interface {
	GetAllInstructors(ctx context.Context) ([]*models.Instructor, error)
	GetInstructorByID(ctx context.Context, id string) (*models.Instructor, error)
	GetInstructorByEmail(ctx context.Context, email string) (*models.Instructor, error)
	GetInstructorsByDepartment(ctx context.Context, department string) ([]*models.Instructor, error)
	GetInstructorsByCourse(ctx context.Context, courseID string) ([]*models.Instructor, error)
	CreateInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor *models.Instructor) error
	DeleteInstructor(ctx context.Context, id string) error

	// AssignInstructorToCourse links the instructor and course on both
	// sides. Returns false without writing when the link already exists on
	// both sides. The two repositories are persisted independently; a
	// failure between the two writes is not rolled back.
	AssignInstructorToCourse(ctx context.Context, instructorID, courseID string) (bool, error)

	// RemoveInstructorFromCourse unlinks both sides. Returns false without
	// writing when the link is absent on either side.
	RemoveInstructorFromCourse(ctx context.Context, instructorID, courseID string) (bool, error)

	// OnInstructorChanged registers a synchronous observer, invoked in
	// registration order before the mutating call returns.
	OnInstructorChanged(fn func(models.InstructorChange))
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo *repositories.InstructorRepository
	courseRepo     *repositories.CourseRepository
	observers      []func(models.InstructorChange)
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo *repositories.InstructorRepository, courseRepo *repositories.CourseRepository) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
		courseRepo:     courseRepo,
	}
}

// validateInstructor validates instructor data, aggregating every violated
// rule into a single validation error.
func (s *instructorServiceImpl) validateInstructor(instructor *models.Instructor) error {
	messages := validation.Collect(
		validation.String("firstName", instructor.FirstName).Required().MaxLength(NameMaxLength),
		validation.String("lastName", instructor.LastName).Required().MaxLength(NameMaxLength),
		validation.String("email", instructor.Email).Required().Contains("@"),
		validation.String("department", instructor.Department).Required().MaxLength(NameMaxLength),
	)
	if len(messages) > 0 {
		return apperrors.NewValidationError(messages...)
	}
	return nil
}

// checkEmailConflict verifies that no other instructor holds the given
// email. A not-found lookup is the success path.
func (s *instructorServiceImpl) checkEmailConflict(ctx context.Context, email, selfID string) error {
	existing, err := s.instructorRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewValidationError(
			fmt.Sprintf("an instructor with email '%s' already exists", existing.Email))
	}
	return nil
}

// GetAllInstructors retrieves all instructors
func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructorRepo.GetAll(ctx)
	return instructors, classify("get all instructors", err)
}

// GetInstructorByID retrieves an instructor by ID
func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id string) (*models.Instructor, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewInvalidArgumentError("instructor ID")
	}
	instructor, err := s.instructorRepo.GetByID(ctx, id)
	return instructor, classify("get instructor by ID", err)
}

// GetInstructorByEmail retrieves an instructor by email
func (s *instructorServiceImpl) GetInstructorByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewInvalidArgumentError("email")
	}
	instructor, err := s.instructorRepo.GetByEmail(ctx, email)
	return instructor, classify("get instructor by email", err)
}

// GetInstructorsByDepartment retrieves all instructors in a department
func (s *instructorServiceImpl) GetInstructorsByDepartment(ctx context.Context, department string) ([]*models.Instructor, error) {
	if strings.TrimSpace(department) == "" {
		return nil, apperrors.NewInvalidArgumentError("department")
	}
	instructors, err := s.instructorRepo.GetByDepartment(ctx, department)
	return instructors, classify("get instructors by department", err)
}

// GetInstructorsByCourse retrieves all instructors that list the course
func (s *instructorServiceImpl) GetInstructorsByCourse(ctx context.Context, courseID string) ([]*models.Instructor, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, apperrors.NewInvalidArgumentError("course ID")
	}
	instructors, err := s.instructorRepo.GetByCourse(ctx, courseID)
	return instructors, classify("get instructors by course", err)
}

// CreateInstructor validates and persists a new instructor
func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if instructor == nil {
		return nil, apperrors.NewInvalidArgumentError("instructor")
	}
	if err := s.validateInstructor(instructor); err != nil {
		return nil, classify("create instructor", err)
	}
	if err := s.checkEmailConflict(ctx, instructor.Email, ""); err != nil {
		return nil, classify("create instructor", err)
	}

	instructor.ID = uuid.NewString()
	instructor.CreatedDate = time.Now().UTC()
	if instructor.HireDate.IsZero() {
		instructor.HireDate = instructor.CreatedDate
	}
	if instructor.CourseIDs == nil {
		instructor.CourseIDs = []string{}
	}

	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return nil, classify("create instructor", err)
	}

	s.notify(models.InstructorChange{
		InstructorID: instructor.ID,
		Email:        instructor.Email,
		Action:       models.ActionAdded,
		Timestamp:    time.Now().UTC(),
	})
	return instructor, nil
}

// UpdateInstructor validates and replaces an existing instructor wholesale
func (s *instructorServiceImpl) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if instructor == nil {
		return apperrors.NewInvalidArgumentError("instructor")
	}
	if err := s.validateInstructor(instructor); err != nil {
		return classify("update instructor", err)
	}

	existing, err := s.instructorRepo.GetByID(ctx, instructor.ID)
	if err != nil {
		return classify("update instructor", err)
	}
	if err := s.checkEmailConflict(ctx, instructor.Email, instructor.ID); err != nil {
		return classify("update instructor", err)
	}

	// CreatedDate is immutable; carry it over regardless of the input.
	instructor.CreatedDate = existing.CreatedDate

	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		return classify("update instructor", err)
	}

	s.notify(models.InstructorChange{
		InstructorID: instructor.ID,
		Email:        instructor.Email,
		Action:       models.ActionUpdated,
		Timestamp:    time.Now().UTC(),
	})
	return nil
}

// DeleteInstructor removes an instructor. Courses referencing the
// instructor keep its ID in their InstructorIDs; there is no deletion
// cascade.
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewInvalidArgumentError("instructor ID")
	}

	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return classify("delete instructor", err)
	}

	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		return classify("delete instructor", err)
	}

	s.notify(models.InstructorChange{
		InstructorID: instructor.ID,
		Email:        instructor.Email,
		Action:       models.ActionDeleted,
		Timestamp:    time.Now().UTC(),
	})
	return nil
}

// AssignInstructorToCourse links the instructor and course on both sides
func (s *instructorServiceImpl) AssignInstructorToCourse(ctx context.Context, instructorID, courseID string) (bool, error) {
	if strings.TrimSpace(instructorID) == "" {
		return false, apperrors.NewInvalidArgumentError("instructor ID")
	}
	if strings.TrimSpace(courseID) == "" {
		return false, apperrors.NewInvalidArgumentError("course ID")
	}

	instructor, err := s.instructorRepo.GetByID(ctx, instructorID)
	if err != nil {
		return false, classify("assign instructor to course", err)
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return false, classify("assign instructor to course", err)
	}

	if instructor.IsTeaching(courseID) && course.HasInstructor(instructorID) {
		return false, nil
	}

	// Two independent persists. A failure after the first leaves the two
	// files inconsistent; there is no compensating rollback.
	if !instructor.IsTeaching(courseID) {
		if _, err := s.instructorRepo.AssignToCourse(ctx, instructorID, courseID); err != nil {
			return false, classify("assign instructor to course", err)
		}
	}
	if course.AddInstructor(instructorID) {
		if err := s.courseRepo.Update(ctx, course); err != nil {
			return false, classify("assign instructor to course", err)
		}
	}

	s.notify(models.InstructorChange{
		InstructorID: instructor.ID,
		Email:        instructor.Email,
		Action:       models.ActionUpdated,
		Detail:       fmt.Sprintf("Assigned to course %s", course.Code),
		Timestamp:    time.Now().UTC(),
	})
	return true, nil
}

// RemoveInstructorFromCourse unlinks the instructor and course on both sides
func (s *instructorServiceImpl) RemoveInstructorFromCourse(ctx context.Context, instructorID, courseID string) (bool, error) {
	if strings.TrimSpace(instructorID) == "" {
		return false, apperrors.NewInvalidArgumentError("instructor ID")
	}
	if strings.TrimSpace(courseID) == "" {
		return false, apperrors.NewInvalidArgumentError("course ID")
	}

	instructor, err := s.instructorRepo.GetByID(ctx, instructorID)
	if err != nil {
		return false, classify("remove instructor from course", err)
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return false, classify("remove instructor from course", err)
	}

	// The link must exist on both sides; a half-link is left untouched.
	if !instructor.IsTeaching(courseID) || !course.HasInstructor(instructorID) {
		return false, nil
	}

	if _, err := s.instructorRepo.RemoveFromCourse(ctx, instructorID, courseID); err != nil {
		return false, classify("remove instructor from course", err)
	}
	course.RemoveInstructor(instructorID)
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return false, classify("remove instructor from course", err)
	}

	s.notify(models.InstructorChange{
		InstructorID: instructor.ID,
		Email:        instructor.Email,
		Action:       models.ActionUpdated,
		Detail:       fmt.Sprintf("Removed from course %s", course.Code),
		Timestamp:    time.Now().UTC(),
	})
	return true, nil
}

// OnInstructorChanged registers an observer for instructor mutations
func (s *instructorServiceImpl) OnInstructorChanged(fn func(models.InstructorChange)) {
	s.observers = append(s.observers, fn)
}

func (s *instructorServiceImpl) notify(change models.InstructorChange) {
	for _, fn := range s.observers {
		fn(change)
	}
}
