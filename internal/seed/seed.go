package seed

import (
	"context"
	"errors"
	"time"

	appModels "github.com/academica/registrar/internal/app/models"
	appServices "github.com/academica/registrar/internal/app/services"
	"github.com/academica/registrar/internal/pkg/apperrors"
	"github.com/academica/registrar/internal/pkg/logger"
)

// CreateSampleData populates the stores with a small set of courses and
// instructors and links them. Records that already exist (validation
// conflicts) are skipped; other errors are collected without stopping the
// process.
func CreateSampleData(ctx context.Context, courseService appServices.CourseService, instructorService appServices.InstructorService) error {
	logger.Info().Msg("Checking/Creating sample data...")
	var finalErr error

	courses := []*appModels.Course{
		{
			Code:          "CS101",
			Title:         "Introduction to Computer Science",
			Description:   "Fundamentals of programming and computational thinking.",
			Credits:       3,
			MaxEnrollment: 120,
			Department:    "Computer Science",
		},
		{
			Code:          "CS301",
			Title:         "Algorithms and Data Structures",
			Credits:       4,
			MaxEnrollment: 80,
			Department:    "Computer Science",
		},
		{
			Code:          "MATH201",
			Title:         "Linear Algebra",
			Credits:       4,
			MaxEnrollment: 150,
			Department:    "Mathematics",
		},
	}

	codeToID := make(map[string]string)
	for _, course := range courses {
		created, err := courseService.CreateCourse(ctx, course)
		if err != nil {
			if apperrors.IsValidation(err) {
				// Already present from an earlier run; reuse it.
				if existing, errGet := courseService.GetCourseByCode(ctx, course.Code); errGet == nil {
					codeToID[course.Code] = existing.ID
				}
				continue
			}
			logger.Error().Err(err).Str("code", course.Code).Msg("Error creating sample course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		codeToID[created.Code] = created.ID
	}

	instructors := []*appModels.Instructor{
		{
			FirstName:  "Ada",
			LastName:   "Kaya",
			Email:      "ada.kaya@example.edu",
			Department: "Computer Science",
			Title:      "Associate Professor",
			IsActive:   true,
			IsFullTime: true,
			HireDate:   time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			FirstName:  "Mehmet",
			LastName:   "Demir",
			Email:      "mehmet.demir@example.edu",
			Department: "Mathematics",
			Title:      "Lecturer",
			IsActive:   true,
			IsFullTime: false,
			HireDate:   time.Date(2021, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	emailToID := make(map[string]string)
	for _, instructor := range instructors {
		created, err := instructorService.CreateInstructor(ctx, instructor)
		if err != nil {
			if apperrors.IsValidation(err) {
				if existing, errGet := instructorService.GetInstructorByEmail(ctx, instructor.Email); errGet == nil {
					emailToID[instructor.Email] = existing.ID
				}
				continue
			}
			logger.Error().Err(err).Str("email", instructor.Email).Msg("Error creating sample instructor")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		emailToID[created.Email] = created.ID
	}

	assignments := []struct {
		email string
		code  string
	}{
		{"ada.kaya@example.edu", "CS101"},
		{"ada.kaya@example.edu", "CS301"},
		{"mehmet.demir@example.edu", "MATH201"},
	}

	for _, a := range assignments {
		instructorID, okI := emailToID[a.email]
		courseID, okC := codeToID[a.code]
		if !okI || !okC {
			continue
		}
		if _, err := instructorService.AssignInstructorToCourse(ctx, instructorID, courseID); err != nil {
			logger.Error().Err(err).Str("email", a.email).Str("code", a.code).
				Msg("Error assigning sample instructor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	logger.Info().Msg("Sample data check complete")
	return finalErr
}
