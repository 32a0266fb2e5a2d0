package repositories

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository     *CourseRepository
	InstructorRepository *InstructorRepository
}

// NewRepositories initializes all repositories against their backing files
func NewRepositories(coursesPath, instructorsPath string) (*Repositories, error) {
	courseRepo, err := NewCourseRepository(coursesPath)
	if err != nil {
		return nil, err
	}

	instructorRepo, err := NewInstructorRepository(instructorsPath)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		CourseRepository:     courseRepo,
		InstructorRepository: instructorRepo,
	}, nil
}
