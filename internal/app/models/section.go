package models

// Section represents one offering of a course at a specific room and time.
// A course may have multiple sections.
type Section struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"courseId"`
	Room     string `json:"room,omitempty"`
	TimeSlot string `json:"timeSlot,omitempty"`

	// Resolved display name for read-side listings
	CourseName string `json:"courseName,omitempty"`
}

// PlaceholderSectionValue is used for the room and time slot of sections
// auto-created during student self-enrollment.
const PlaceholderSectionValue = "TBD"
