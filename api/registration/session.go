/* session.go
 * Contains the per user registration state machine. A Session accumulates
 * answers across the multi step flow; each step validates its input against
 * the allowed option set and refuses to advance otherwise
 * Authors: Zachary Bower
 */

package registration

import (
	"fmt"
	"strings"
	"time"

	"teammatch-bot/api/catalog"
	"teammatch-bot/api/logic"
	"teammatch-bot/api/shared"
)

// Step names the prompt a session is currently waiting on
type Step string

const (
	StepUniversity Step = "university"
	StepDepartment Step = "department"
	StepRole       Step = "role"
	StepTeamName   Step = "team_name"
	StepCategory   Step = "category"
	StepTrack      Step = "track"
	StepTopics     Step = "topics"
	StepComment    Step = "comment"
	StepComplete   Step = "complete"
)

// Session is the transient scratch record for one user's in-progress
// registration. It exists only between start and completion or expiry.
type Session struct {
	UserID         string            `bson:"user_id"`
	Username       string            `bson:"user_name"`
	Step           Step              `bson:"step"`
	University     string            `bson:"university,omitempty"`
	Department     shared.Department `bson:"department,omitempty"`
	Role           shared.Role       `bson:"role,omitempty"`
	TeamName       string            `bson:"team_name,omitempty"`
	Category       string            `bson:"category,omitempty"`
	Track          string            `bson:"track,omitempty"`
	SelectedTopics []string          `bson:"selected_topics,omitempty"`
	Rating         int               `bson:"rating,omitempty"`
	Comment        string            `bson:"comment,omitempty"`
	ExpiresAt      time.Time         `bson:"expires_at"`
}

func (s *Session) requireStep(step Step) error {
	if s.Step != step {
		return fmt.Errorf("%w: expected input for the %s step", shared.ErrValidation, s.Step)
	}
	return nil
}

// ChooseUniversity resolves and stores the university selection. When an
// identity lock exists the chosen university must equal the locked one.
func (s *Session) ChooseUniversity(input string, locked *shared.LeaderIdentity) error {
	if err := s.requireStep(StepUniversity); err != nil {
		return err
	}
	name, ok := logic.ResolveOption(input, catalog.Universities())
	if !ok {
		return fmt.Errorf("%w: %q is not a listed university", shared.ErrValidation, input)
	}
	if locked != nil && locked.University != name {
		return fmt.Errorf("%w: you must register with %s", shared.ErrIdentityMismatch, locked.University)
	}
	s.University = name
	s.Step = StepDepartment
	return nil
}

// ChooseDepartment validates and stores the department selection, again
// honoring an existing identity lock
func (s *Session) ChooseDepartment(input string, locked *shared.LeaderIdentity) error {
	if err := s.requireStep(StepDepartment); err != nil {
		return err
	}
	dept, ok := catalog.ParseDepartment(input)
	if !ok {
		return fmt.Errorf("%w: %q is not a department (cs, it, is, ai, sw, bio)", shared.ErrValidation, input)
	}
	if locked != nil && locked.Department != dept {
		return fmt.Errorf("%w: your department is locked to %s", shared.ErrIdentityMismatch, strings.ToUpper(string(locked.Department)))
	}
	s.Department = dept
	s.Step = StepRole
	return nil
}

// ChooseRole stores the role. Choosing leader re-verifies the identity lock
// against the university and department already entered.
func (s *Session) ChooseRole(input string, locked *shared.LeaderIdentity) error {
	if err := s.requireStep(StepRole); err != nil {
		return err
	}
	role, ok := catalog.ParseRole(input)
	if !ok {
		return fmt.Errorf("%w: role must be leader or member", shared.ErrValidation)
	}
	if role == shared.RoleLeader && locked != nil {
		if locked.University != s.University || locked.Department != s.Department {
			return fmt.Errorf("%w: you must register with %s / %s", shared.ErrIdentityMismatch,
				locked.University, strings.ToUpper(string(locked.Department)))
		}
	}
	s.Role = role
	if role == shared.RoleLeader {
		s.Step = StepTeamName
	} else {
		s.Step = StepCategory
	}
	return nil
}

// SetTeamName stores a leader's team name
func (s *Session) SetTeamName(name string) error {
	if err := s.requireStep(StepTeamName); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: team name cannot be empty", shared.ErrValidation)
	}
	s.TeamName = name
	s.Step = StepCategory
	return nil
}

// ChooseCategory resolves and stores the track category
func (s *Session) ChooseCategory(input string) error {
	if err := s.requireStep(StepCategory); err != nil {
		return err
	}
	name, ok := logic.ResolveOption(input, catalog.Categories())
	if !ok {
		return fmt.Errorf("%w: %q is not a track category", shared.ErrValidation, input)
	}
	s.Category = name
	s.Step = StepTrack
	return nil
}

// ChooseTrack resolves and stores the track within the chosen category
func (s *Session) ChooseTrack(input string) error {
	if err := s.requireStep(StepTrack); err != nil {
		return err
	}
	tracks, ok := catalog.TracksInCategory(s.Category)
	if !ok {
		return fmt.Errorf("%w: %q", shared.ErrUnknownTrack, s.Category)
	}
	name, ok := logic.ResolveOption(input, tracks)
	if !ok {
		return fmt.Errorf("%w: %q is not a track in %s", shared.ErrValidation, input, s.Category)
	}
	s.Track = name
	if s.Role == shared.RoleMember {
		s.Step = StepTopics
	} else {
		s.Step = StepComment
	}
	return nil
}

// ChooseTopics resolves the multi select of studied topics and computes the
// member's rating. Members only.
func (s *Session) ChooseTopics(inputs []string) error {
	if err := s.requireStep(StepTopics); err != nil {
		return err
	}
	valid, err := catalog.TopicNames(s.Track)
	if err != nil {
		return err
	}
	resolved, invalid := logic.ResolveOptions(inputs, valid)
	if len(invalid) > 0 {
		return fmt.Errorf("%w: unknown topics: %s", shared.ErrValidation, strings.Join(invalid, ", "))
	}
	if len(resolved) == 0 {
		return fmt.Errorf("%w: select at least one topic", shared.ErrValidation)
	}
	// Dedupe while keeping first mention order
	seen := make(map[string]bool, len(resolved))
	topics := resolved[:0]
	for _, name := range resolved {
		if !seen[name] {
			seen[name] = true
			topics = append(topics, name)
		}
	}
	rating, err := logic.CalculateRating(s.Track, topics)
	if err != nil {
		return err
	}
	s.SelectedTopics = topics
	s.Rating = rating
	s.Step = StepComment
	return nil
}

// SetComment stores the free text comment and completes the flow
func (s *Session) SetComment(text string) error {
	if err := s.requireStep(StepComment); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: comment cannot be empty", shared.ErrValidation)
	}
	s.Comment = text
	s.Step = StepComplete
	return nil
}

// AwaitingText reports whether the session's current step consumes the next
// plain message from the user rather than a command argument
func (s *Session) AwaitingText() bool {
	return s.Step == StepTeamName || s.Step == StepComment
}
