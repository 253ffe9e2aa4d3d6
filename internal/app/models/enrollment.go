package models

// DefaultGrade is the grade assigned to a new enrollment.
const DefaultGrade = "N/A"

// Enrollment links one student to one section, carrying a grade
type Enrollment struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	SectionID int64  `json:"sectionId"`
	Grade     string `json:"grade"`

	// Resolved display fields for read-side listings
	StudentName  string `json:"studentName,omitempty"`
	SectionLabel string `json:"sectionLabel,omitempty"`
}

// EnrolledCourse is a student's view of one enrollment: the course joined
// through its section, with resolved professor and department names.
type EnrolledCourse struct {
	CourseID       int64  `json:"courseId"`
	CourseName     string `json:"courseName"`
	Credits        int    `json:"credits"`
	ProfessorName  string `json:"professorName,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
	Grade          string `json:"grade"`
}

// CourseStudent is a professor's view of one student enrolled in one of
// their course sections.
type CourseStudent struct {
	StudentID  int64  `json:"studentId"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	CourseName string `json:"courseName"`
	Grade      string `json:"grade"`
}
