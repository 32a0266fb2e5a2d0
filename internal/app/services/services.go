package services

import (
	"errors"

	"github.com/academica/registrar/internal/pkg/apperrors"
	"github.com/academica/registrar/internal/pkg/logger"
)

// Services defined in this package:
// - CourseService: validation, uniqueness and change notification for courses
// - InstructorService: the same for instructors, plus the bidirectional
//   course-instructor relationship operations spanning both repositories

// classify applies the shared error policy at the service boundary:
// expected domain errors (not found, validation, invalid argument) are
// logged at warn level and passed through unchanged; anything else is
// logged at error level and rewrapped as a data-operation failure.
func classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	if apperrors.IsDomain(err) {
		logger.Warn().Err(err).Str("operation", operation).Msg("Domain error")
		return err
	}

	logger.Error().Err(err).Str("operation", operation).Msg("Unexpected error")
	if errors.Is(err, apperrors.ErrDataOperation) {
		return err
	}
	return apperrors.NewDataOperationError("error during "+operation, err)
}
