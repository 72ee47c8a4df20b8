// Package common contains shared constants and sentinel errors used across
// minilearn components.
package common

// Storage keys. The names match what earlier builds of the app wrote into
// device storage, so existing data keeps loading.
const (
	// SessionKey holds the current identity as a JSON object {id, email, name}.
	SessionKey = "elearning_user"

	// CompletedCoursesKey holds the completed course IDs as a JSON array.
	CompletedCoursesKey = "elearning_completed_courses"
)
