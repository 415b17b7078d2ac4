/* models.go
 * This file contains the structs and enums that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

import "time"

type User struct {
	UserID   string
	Username string
}

// Role is the part a user plays in a team, either leading one or joining one
type Role string

const (
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// Department codes for the faculty departments users register under
type Department string

const (
	DepartmentCS  Department = "cs"
	DepartmentIT  Department = "it"
	DepartmentIS  Department = "is"
	DepartmentAI  Department = "ai"
	DepartmentSW  Department = "sw"
	DepartmentBIO Department = "bio"
)

// PendingMember is a member who finished registration and is waiting in a
// track's priority queue until matched or withdrawn
type PendingMember struct {
	UserID         string     `bson:"user_id"`
	Username       string     `bson:"user_name"`
	Track          string     `bson:"track"`
	Rating         int        `bson:"rating"`
	Comment        string     `bson:"comment"`
	Department     Department `bson:"department"`
	University     string     `bson:"university"`
	SelectedTopics []string   `bson:"selected_topics"`
	RegisteredAt   time.Time  `bson:"registration_time"`
}

// PendingLeader is a leader who finished registration and is waiting in a
// track's FIFO list until matched
type PendingLeader struct {
	UserID      string     `bson:"user_id"`
	Username    string     `bson:"user_name"`
	TeamName    string     `bson:"team_name"`
	Track       string     `bson:"track"`
	TeamComment string     `bson:"team_comment"`
	Department  Department `bson:"department"`
	University  string     `bson:"university"`
}

// LeaderIdentity is the permanent university+department binding set the first
// time a user registers as a leader. It is cleared only when that leader is
// successfully matched, freeing them to register fresh for a new team.
type LeaderIdentity struct {
	University string     `bson:"university"`
	Department Department `bson:"department"`
}

// MatchNotice carries the details of one confirmed leader/member pairing.
// The notifier renders it for each party; both deliveries must succeed for
// the pairing to be confirmed.
type MatchNotice struct {
	Leader PendingLeader
	Member PendingMember
}
