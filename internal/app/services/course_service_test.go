package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academica/registrar/internal/app/models"
	"github.com/academica/registrar/internal/app/repositories"
	"github.com/academica/registrar/internal/pkg/apperrors"
)

func newTestServices(t *testing.T) (CourseService, InstructorService, *repositories.Repositories) {
	t.Helper()
	dir := t.TempDir()
	repos, err := repositories.NewRepositories(
		filepath.Join(dir, "courses.json"),
		filepath.Join(dir, "instructors.json"),
	)
	require.NoError(t, err)

	courseService := NewCourseService(repos.CourseRepository)
	instructorService := NewInstructorService(repos.InstructorRepository, repos.CourseRepository)
	return courseService, instructorService, repos
}

func validCourse(code string) *models.Course {
	return &models.Course{
		Code:          code,
		Title:         "Title of " + code,
		Credits:       3,
		MaxEnrollment: 30,
		Department:    "CS",
	}
}

func TestCreateCourseAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	courseService, _, _ := newTestServices(t)

	created, err := courseService.CreateCourse(ctx, validCourse("CS101"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedDate.IsZero())
	assert.NotNil(t, created.InstructorIDs)

	got, err := courseService.GetCourseByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateCourseNilInput(t *testing.T) {
	courseService, _, _ := newTestServices(t)

	_, err := courseService.CreateCourse(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateCourseAggregatesAllViolations(t *testing.T) {
	courseService, _, _ := newTestServices(t)

	_, err := courseService.CreateCourse(context.Background(), &models.Course{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Every violated rule is reported in one pass, not just the first.
	msg := err.Error()
	assert.Contains(t, msg, "code is required")
	assert.Contains(t, msg, "title is required")
	assert.Contains(t, msg, "department is required")
	assert.Contains(t, msg, "credits must be between 1 and 12")
	assert.Contains(t, msg, "maxEnrollment must be between 1 and 500")
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	ctx := context.Background()
	courseService, _, _ := newTestServices(t)

	_, err := courseService.CreateCourse(ctx, validCourse("CS101"))
	require.NoError(t, err)

	_, err = courseService.CreateCourse(ctx, validCourse("cs101"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "already exists")

	all, err := courseService.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateCourse(t *testing.T) {
	ctx := context.Background()
	courseService, _, _ := newTestServices(t)

	created, err := courseService.CreateCourse(ctx, validCourse("CS101"))
	require.NoError(t, err)
	originalCreated := created.CreatedDate

	created.Title = "Renamed"
	created.CreatedDate = originalCreated.AddDate(1, 0, 0)
	require.NoError(t, courseService.UpdateCourse(ctx, created))

	got, err := courseService.GetCourseByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, originalCreated, got.CreatedDate, "CreatedDate is immutable")
}

func TestUpdateCourseCodeConflict(t *testing.T) {
	ctx := context.Background()
	courseService, _, _ := newTestServices(t)

	_, err := courseService.CreateCourse(ctx, validCourse("CS101"))
	require.NoError(t, err)
	other, err := courseService.CreateCourse(ctx, validCourse("CS301"))
	require.NoError(t, err)

	// Keeping its own code is fine.
	other.Title = "Renamed"
	require.NoError(t, courseService.UpdateCourse(ctx, other))

	// Taking another course's code is a conflict.
	other.Code = "CS101"
	err = courseService.UpdateCourse(ctx, other)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateCourseNotFound(t *testing.T) {
	courseService, _, _ := newTestServices(t)

	ghost := validCourse("CS999")
	ghost.ID = "no-such-id"
	err := courseService.UpdateCourse(context.Background(), ghost)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "no-such-id")
}

func TestDeleteCourseNotFound(t *testing.T) {
	courseService, _, _ := newTestServices(t)

	err := courseService.DeleteCourse(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "no-such-id")
}

func TestCourseObserversRunInRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	courseService, _, _ := newTestServices(t)

	var order []string
	courseService.OnCourseChanged(func(change models.CourseChange) {
		order = append(order, "first:"+string(change.Action))
	})
	courseService.OnCourseChanged(func(change models.CourseChange) {
		order = append(order, "second:"+string(change.Action))
	})

	created, err := courseService.CreateCourse(ctx, validCourse("CS101"))
	require.NoError(t, err)
	require.NoError(t, courseService.DeleteCourse(ctx, created.ID))

	assert.Equal(t, []string{
		"first:added", "second:added",
		"first:deleted", "second:deleted",
	}, order)
}

func TestGetCoursesByDepartmentBlankArgument(t *testing.T) {
	courseService, _, _ := newTestServices(t)

	_, err := courseService.GetCoursesByDepartment(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}
