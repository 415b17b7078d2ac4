/* catalog.go
 * Static reference data: track categories, per track topic lists with
 * difficulty scores, universities and departments. Everything in this
 * package is read only
 * Authors: Zachary Bower
 */

package catalog

import (
	"fmt"
	"strings"

	"teammatch-bot/api/shared"
)

// Topic is one studyable topic inside a track. Score feeds the rating
// calculation: beginner 15, intermediate 25, advanced 40.
type Topic struct {
	Name       string
	Difficulty string
	Score      int
}

// categoryOrder fixes the sweep order over categories
var categoryOrder = []string{
	"Backend Frameworks",
	"Cybersecurity Specializations",
	"Data Science Specializations",
	"Other Tracks",
}

var trackCategories = map[string][]string{
	"Backend Frameworks":            {".net", "node.js", "laravel", "django", "spring"},
	"Cybersecurity Specializations": {"network security", "ethical hacking", "digital forensics"},
	"Data Science Specializations":  {"machine learning", "data analysis", "data engineering", "deep learning"},
	"Other Tracks":                  {"front end", "ui-ux", "flutter", "cloud", "mobile", "embedded systems", "vr", "game development"},
}

var universities = []string{
	"Cairo University",
	"Ain Shams University",
	"Alexandria University",
	"Helwan University",
	"Mansoura University",
	"Assiut University",
	"Zagazig University",
	"Tanta University",
	"Suez Canal University",
	"Benha University",
	"Fayoum University",
	"South Valley University",
	"Menoufia University",
	"Port Said University",
	"Beni Suef University",
	"Kafrelsheikh University",
	"Damietta University",
	"Sohag University",
	"Modern Academy",
	"MSA University",
	"MTI University",
	"Future University",
	"October 6 University",
	"Badr University",
	"New Cairo Academy",
}

var departments = []shared.Department{
	shared.DepartmentCS,
	shared.DepartmentIT,
	shared.DepartmentIS,
	shared.DepartmentAI,
	shared.DepartmentSW,
	shared.DepartmentBIO,
}

// Categories returns the track categories in sweep order
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// TracksInCategory returns the tracks belonging to a category, or false if
// the category does not exist
func TracksInCategory(category string) ([]string, bool) {
	tracks, ok := trackCategories[category]
	if !ok {
		return nil, false
	}
	out := make([]string, len(tracks))
	copy(out, tracks)
	return out, true
}

// Tracks returns every track across all categories in sweep order
func Tracks() []string {
	var out []string
	for _, category := range categoryOrder {
		out = append(out, trackCategories[category]...)
	}
	return out
}

// TopicsForTrack returns the ordered topic list for a track. An unknown
// track is a data integrity fault, reported as shared.ErrUnknownTrack.
func TopicsForTrack(track string) ([]Topic, error) {
	topics, ok := trackTopics[track]
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownTrack, track)
	}
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out, nil
}

// TopicNames returns just the topic names for a track
func TopicNames(track string) ([]string, error) {
	topics, err := TopicsForTrack(track)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(topics))
	for i, topic := range topics {
		names[i] = topic.Name
	}
	return names, nil
}

// Universities returns the fixed university list
func Universities() []string {
	out := make([]string, len(universities))
	copy(out, universities)
	return out
}

// IsUniversity reports whether name is one of the fixed universities
func IsUniversity(name string) bool {
	for _, u := range universities {
		if u == name {
			return true
		}
	}
	return false
}

// Departments returns the fixed department list
func Departments() []shared.Department {
	out := make([]shared.Department, len(departments))
	copy(out, departments)
	return out
}

// DepartmentNames returns the department codes as strings, used for option
// prompts and fuzzy resolution
func DepartmentNames() []string {
	names := make([]string, len(departments))
	for i, d := range departments {
		names[i] = string(d)
	}
	return names
}

// ParseDepartment validates a department code (case insensitive)
func ParseDepartment(s string) (shared.Department, bool) {
	d := shared.Department(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range departments {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// ParseRole validates a role name (case insensitive)
func ParseRole(s string) (shared.Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(shared.RoleLeader):
		return shared.RoleLeader, true
	case string(shared.RoleMember):
		return shared.RoleMember, true
	}
	return "", false
}
