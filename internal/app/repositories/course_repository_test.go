package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academica/registrar/internal/app/models"
	"github.com/academica/registrar/internal/pkg/apperrors"
)

func newCourse(id, code string) *models.Course {
	return &models.Course{
		ID:            id,
		Code:          code,
		Title:         "Title of " + code,
		Credits:       3,
		MaxEnrollment: 50,
		Department:    "Computer Science",
		InstructorIDs: []string{},
		CreatedDate:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func newCourseRepo(t *testing.T) (*CourseRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	repo, err := NewCourseRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestCourseRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, path := newCourseRepo(t)

	course := newCourse("c-1", "CS101")
	course.Description = "Intro course"
	require.NoError(t, repo.Create(ctx, course))

	got, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, course, got)

	// A fresh repository reading the same file sees the identical record.
	reloaded, err := NewCourseRepository(path)
	require.NoError(t, err)
	got, err = reloaded.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, course, got)
}

func TestCourseRepositoryRejectsDuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCourseRepo(t)

	require.NoError(t, repo.Create(ctx, newCourse("c-1", "CS101")))

	err := repo.Create(ctx, newCourse("c-2", "cs101"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCourseRepositoryGetByCode(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCourseRepo(t)
	require.NoError(t, repo.Create(ctx, newCourse("c-1", "CS101")))

	got, err := repo.GetByCode(ctx, "cs101")
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ID)

	_, err = repo.GetByCode(ctx, "CS999")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "CS999")
}

func TestCourseRepositoryGetByDepartment(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCourseRepo(t)

	cs := newCourse("c-1", "CS101")
	math := newCourse("c-2", "MATH201")
	math.Department = "Mathematics"
	require.NoError(t, repo.Create(ctx, cs))
	require.NoError(t, repo.Create(ctx, math))

	got, err := repo.GetByDepartment(ctx, "computer science")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CS101", got[0].Code)

	got, err = repo.GetByDepartment(ctx, "History")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCourseRepositoryGetByInstructor(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCourseRepo(t)

	taught := newCourse("c-1", "CS101")
	taught.InstructorIDs = []string{"i-1"}
	require.NoError(t, repo.Create(ctx, taught))
	require.NoError(t, repo.Create(ctx, newCourse("c-2", "CS301")))

	got, err := repo.GetByInstructor(ctx, "i-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CS101", got[0].Code)
}

func TestCourseRepositoryNotFoundPropagation(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCourseRepo(t)

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "nope")

	err = repo.Update(ctx, newCourse("nope", "CS101"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.Delete(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "nope")
}
