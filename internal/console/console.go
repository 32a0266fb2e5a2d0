package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/academica/registrar/internal/app/models"
	"github.com/academica/registrar/internal/app/services"
	"github.com/academica/registrar/internal/pkg/apperrors"
)

// Console is the interactive menu loop. It carries no business logic; it
// collects input, calls the services and renders results or friendly errors.
type Console struct {
	courseService     services.CourseService
	instructorService services.InstructorService
	in                *bufio.Scanner
	out               io.Writer
	eof               bool
}

// New creates a console bound to the given reader and writer.
func New(courseService services.CourseService, instructorService services.InstructorService, in io.Reader, out io.Writer) *Console {
	return &Console{
		courseService:     courseService,
		instructorService: instructorService,
		in:                bufio.NewScanner(in),
		out:               out,
	}
}

// Run shows the menu until the operator quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "=== Registrar ===")
		fmt.Fprintln(c.out, " 1) List courses")
		fmt.Fprintln(c.out, " 2) Add course")
		fmt.Fprintln(c.out, " 3) Update course")
		fmt.Fprintln(c.out, " 4) Delete course")
		fmt.Fprintln(c.out, " 5) List instructors")
		fmt.Fprintln(c.out, " 6) Add instructor")
		fmt.Fprintln(c.out, " 7) Update instructor")
		fmt.Fprintln(c.out, " 8) Delete instructor")
		fmt.Fprintln(c.out, " 9) Assign instructor to course")
		fmt.Fprintln(c.out, "10) Remove instructor from course")
		fmt.Fprintln(c.out, "11) Find courses by instructor")
		fmt.Fprintln(c.out, "12) Find by department")
		fmt.Fprintln(c.out, "13) Summary")
		fmt.Fprintln(c.out, " 0) Quit")

		choice := c.prompt("Choice")
		switch choice {
		case "0", "q", "quit", "exit":
			return nil
		case "1":
			c.listCourses(ctx)
		case "2":
			c.addCourse(ctx)
		case "3":
			c.updateCourse(ctx)
		case "4":
			c.deleteCourse(ctx)
		case "5":
			c.listInstructors(ctx)
		case "6":
			c.addInstructor(ctx)
		case "7":
			c.updateInstructor(ctx)
		case "8":
			c.deleteInstructor(ctx)
		case "9":
			c.assign(ctx)
		case "10":
			c.unassign(ctx)
		case "11":
			c.coursesByInstructor(ctx)
		case "12":
			c.byDepartment(ctx)
		case "13":
			c.summary(ctx)
		case "":
			if c.eof {
				return c.in.Err()
			}
		default:
			fmt.Fprintln(c.out, "Unknown choice.")
		}
	}
}

func (c *Console) prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Console) promptInt(label string) int {
	value, err := strconv.Atoi(c.prompt(label))
	if err != nil {
		return 0
	}
	return value
}

// printError maps the error taxonomy to operator-facing text.
func (c *Console) printError(err error) {
	switch {
	case apperrors.IsNotFound(err):
		fmt.Fprintf(c.out, "Not found: %v\n", err)
	case apperrors.IsValidation(err):
		fmt.Fprintf(c.out, "Invalid input: %v\n", err)
	default:
		fmt.Fprintf(c.out, "Operation failed: %v\n", err)
	}
}

func (c *Console) listCourses(ctx context.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if len(courses) == 0 {
		fmt.Fprintln(c.out, "No courses.")
		return
	}
	for _, course := range courses {
		fmt.Fprintf(c.out, "%-10s %-40s %d cr  %-20s %s\n",
			course.Code, course.Title, course.Credits, course.Department, course.ID)
	}
}

func (c *Console) addCourse(ctx context.Context) {
	course := &models.Course{
		Code:          c.prompt("Code"),
		Title:         c.prompt("Title"),
		Description:   c.prompt("Description (optional)"),
		Credits:       c.promptInt("Credits"),
		MaxEnrollment: c.promptInt("Max enrollment"),
		Department:    c.prompt("Department"),
	}
	created, err := c.courseService.CreateCourse(ctx, course)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Created course %s (%s)\n", created.Code, created.ID)
}

// promptKeep asks for a new value, keeping the current one on blank input.
func (c *Console) promptKeep(label, current string) string {
	if v := c.prompt(fmt.Sprintf("%s [%s]", label, current)); v != "" {
		return v
	}
	return current
}

// promptKeepInt is promptKeep for integers; non-numeric input keeps current.
func (c *Console) promptKeepInt(label string, current int) int {
	v := c.prompt(fmt.Sprintf("%s [%d]", label, current))
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return current
}

func (c *Console) updateCourse(ctx context.Context) {
	course, err := c.courseService.GetCourseByID(ctx, c.prompt("Course ID"))
	if err != nil {
		c.printError(err)
		return
	}

	course.Code = c.promptKeep("Code", course.Code)
	course.Title = c.promptKeep("Title", course.Title)
	course.Description = c.promptKeep("Description", course.Description)
	course.Credits = c.promptKeepInt("Credits", course.Credits)
	course.MaxEnrollment = c.promptKeepInt("Max enrollment", course.MaxEnrollment)
	course.Department = c.promptKeep("Department", course.Department)

	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Course updated.")
}

func (c *Console) deleteCourse(ctx context.Context) {
	if err := c.courseService.DeleteCourse(ctx, c.prompt("Course ID")); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Course deleted.")
}

func (c *Console) listInstructors(ctx context.Context) {
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if len(instructors) == 0 {
		fmt.Fprintln(c.out, "No instructors.")
		return
	}
	for _, instructor := range instructors {
		fmt.Fprintf(c.out, "%-30s %-30s %-20s %s\n",
			instructor.FullName(), instructor.Email, instructor.Department, instructor.ID)
	}
}

func (c *Console) addInstructor(ctx context.Context) {
	instructor := &models.Instructor{
		FirstName:  c.prompt("First name"),
		LastName:   c.prompt("Last name"),
		Email:      c.prompt("Email"),
		Department: c.prompt("Department"),
		Title:      c.prompt("Title (optional)"),
		IsActive:   true,
		IsFullTime: strings.EqualFold(c.prompt("Full time? (y/n)"), "y"),
	}
	created, err := c.instructorService.CreateInstructor(ctx, instructor)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Created instructor %s (%s)\n", created.FullName(), created.ID)
}

func (c *Console) updateInstructor(ctx context.Context) {
	instructor, err := c.instructorService.GetInstructorByID(ctx, c.prompt("Instructor ID"))
	if err != nil {
		c.printError(err)
		return
	}

	instructor.FirstName = c.promptKeep("First name", instructor.FirstName)
	instructor.LastName = c.promptKeep("Last name", instructor.LastName)
	instructor.Email = c.promptKeep("Email", instructor.Email)
	instructor.Department = c.promptKeep("Department", instructor.Department)
	instructor.Title = c.promptKeep("Title", instructor.Title)
	instructor.OfficeLocation = c.promptKeep("Office", instructor.OfficeLocation)
	instructor.Phone = c.promptKeep("Phone", instructor.Phone)

	if err := c.instructorService.UpdateInstructor(ctx, instructor); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Instructor updated.")
}

func (c *Console) deleteInstructor(ctx context.Context) {
	if err := c.instructorService.DeleteInstructor(ctx, c.prompt("Instructor ID")); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Instructor deleted.")
}

func (c *Console) assign(ctx context.Context) {
	linked, err := c.instructorService.AssignInstructorToCourse(ctx,
		c.prompt("Instructor ID"), c.prompt("Course ID"))
	if err != nil {
		c.printError(err)
		return
	}
	if !linked {
		fmt.Fprintln(c.out, "Already assigned.")
		return
	}
	fmt.Fprintln(c.out, "Assigned.")
}

func (c *Console) unassign(ctx context.Context) {
	unlinked, err := c.instructorService.RemoveInstructorFromCourse(ctx,
		c.prompt("Instructor ID"), c.prompt("Course ID"))
	if err != nil {
		c.printError(err)
		return
	}
	if !unlinked {
		fmt.Fprintln(c.out, "No such assignment.")
		return
	}
	fmt.Fprintln(c.out, "Removed.")
}

func (c *Console) coursesByInstructor(ctx context.Context) {
	courses, err := c.courseService.GetCoursesByInstructor(ctx, c.prompt("Instructor ID"))
	if err != nil {
		c.printError(err)
		return
	}
	if len(courses) == 0 {
		fmt.Fprintln(c.out, "No courses for this instructor.")
		return
	}
	for _, course := range courses {
		fmt.Fprintf(c.out, "%-10s %s\n", course.Code, course.Title)
	}
}

func (c *Console) byDepartment(ctx context.Context) {
	department := c.prompt("Department")

	courses, err := c.courseService.GetCoursesByDepartment(ctx, department)
	if err != nil {
		c.printError(err)
		return
	}
	instructors, err := c.instructorService.GetInstructorsByDepartment(ctx, department)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Courses (%d):\n", len(courses))
	for _, course := range courses {
		fmt.Fprintf(c.out, "  %-10s %s\n", course.Code, course.Title)
	}
	fmt.Fprintf(c.out, "Instructors (%d):\n", len(instructors))
	for _, instructor := range instructors {
		fmt.Fprintf(c.out, "  %-30s %s\n", instructor.FullName(), instructor.Email)
	}
}

func (c *Console) summary(ctx context.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "%d courses, %d instructors\n", len(courses), len(instructors))
}
