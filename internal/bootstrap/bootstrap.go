package bootstrap

import (
	"path/filepath"

	"github.com/academica/registrar/internal/app/models"
	appRepos "github.com/academica/registrar/internal/app/repositories"
	appServices "github.com/academica/registrar/internal/app/services"
	"github.com/academica/registrar/internal/config"
	"github.com/academica/registrar/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config            *config.Config
	Repos             *appRepos.Repositories
	CourseService     appServices.CourseService
	InstructorService appServices.InstructorService
}

// Setup loads configuration, configures logging and wires the repository
// and service layers together.
func Setup(configPath string) (*Dependencies, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Format == "pretty",
	})

	repos, err := appRepos.NewRepositories(
		filepath.Join(cfg.Data.Directory, cfg.Data.CoursesFile),
		filepath.Join(cfg.Data.Directory, cfg.Data.InstructorsFile),
	)
	if err != nil {
		return nil, err
	}

	courseService := appServices.NewCourseService(repos.CourseRepository)
	instructorService := appServices.NewInstructorService(repos.InstructorRepository, repos.CourseRepository)

	// Audit observers; delivery is synchronous and in-process only.
	courseService.OnCourseChanged(func(change models.CourseChange) {
		logger.Info().
			Str("courseId", change.CourseID).
			Str("code", change.Code).
			Str("action", string(change.Action)).
			Msg("Course changed")
	})
	instructorService.OnInstructorChanged(func(change models.InstructorChange) {
		event := logger.Info().
			Str("instructorId", change.InstructorID).
			Str("email", change.Email).
			Str("action", string(change.Action))
		if change.Detail != "" {
			event = event.Str("detail", change.Detail)
		}
		event.Msg("Instructor changed")
	})

	logger.Info().Str("dataDir", cfg.Data.Directory).Msg("Registrar initialized")

	return &Dependencies{
		Config:            cfg,
		Repos:             repos,
		CourseService:     courseService,
		InstructorService: instructorService,
	}, nil
}
