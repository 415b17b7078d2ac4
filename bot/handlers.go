/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"teammatch-bot/api/catalog"
	"teammatch-bot/api/registration"
	"teammatch-bot/api/shared"
)

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$helpbot"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$start"):
		b.startHandler(session, message)

	case startsWith(message.Content, "$university"):
		b.universityHandler(session, message)

	case startsWith(message.Content, "$department"):
		b.departmentHandler(session, message)

	case startsWith(message.Content, "$role"):
		b.roleHandler(session, message)

	case startsWith(message.Content, "$category"):
		b.categoryHandler(session, message)

	case startsWith(message.Content, "$track"):
		b.trackHandler(session, message)

	case startsWith(message.Content, "$topics"):
		b.topicsHandler(session, message)

	case startsWith(message.Content, "$match"):
		b.matchHandler(session, message)

	case startsWith(message.Content, "$"):
		session.ChannelMessageSend(message.ChannelID, "Invalid command. Use `$helpbot` for a list of commands.")

	default:
		// Plain messages feed the team name and comment steps
		b.freeTextHandler(session, message)
	}
}

// helpMessageHandler handles the $helpbot command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Team Matching Bot\n")
	res.WriteString("`$start`: Begin the registration process\n")
	res.WriteString("`$university name`: Select your university\n")
	res.WriteString("`$department code`: Select your department (cs, it, is, ai, sw, bio)\n")
	res.WriteString("`$role leader|member`: Choose whether you lead a team or join one\n")
	res.WriteString("`$category name`: Select a track category\n")
	res.WriteString("`$track name`: Select a track within your category\n")
	res.WriteString("`$topics \"Topic 1\" \"Topic 2\"`: Select the topics you have studied (members only). Names with two or more words need to be encased in \"\n")
	res.WriteString("Team names and comments are sent as plain messages when the bot asks for them\n")
	res.WriteString("`$match`: Start a matching pass in the background\n")
	res.WriteString("Registration flow: university, department, role, (team name), category, track, (topics), comment\n")
	res.WriteString("Leaders and members are paired within the same track when their university and department match exactly. Each step times out after 60 seconds of inactivity\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// startHandler handles the $start command with a DiscordSession interface
func (b *Bot) startHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserID: message.Author.ID, Username: message.Author.Username}
	if !b.allowStart(user.UserID) {
		session.ChannelMessageSend(message.ChannelID, "Please wait before using $start again.")
		return
	}

	// A returning leader keeps their first university and department
	if lock, ok := b.APIPtr.State.LeaderIdentity(user.UserID); ok {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf(
			"You have previously registered as a leader for:\nUniversity: %s\nDepartment: %s\n\nYou must use these same details to register again.",
			lock.University, strings.ToUpper(string(lock.Department))))
	}

	s, err := b.APIPtr.StartRegistration(user)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, renderError(err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, promptFor(s))
}

// universityHandler handles the $university command with a DiscordSession interface
func (b *Bot) universityHandler(session DiscordSession, message *discordgo.MessageCreate) {
	input := commandArg(message.Content, "$university")
	s, err := b.APIPtr.ChooseUniversity(message.Author.ID, input)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, renderError(err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("You have chosen %s.\n%s", s.University, promptFor(s)))
}

// departmentHandler handles the $department command with a DiscordSession interface
func (b *Bot) departmentHandler(session DiscordSession, message *discordgo.MessageCreate) {
	input := commandArg(message.Content, "$department")
	s, err := b.APIPtr.ChooseDepartment(message.Author.ID, input)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, renderError(err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("You have chosen %s department.\n%s", strings.ToUpper(string(s.Department)), promptFor(s)))
}

// roleHandler handles the $role command with a DiscordSession interface
func (b *Bot) roleHandler(session DiscordSession, message *discordgo.MessageCreate) {
	input := commandArg(message.Content, "$role")
	s, err := b.APIPtr.ChooseRole(message.Author.ID, input)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, renderError(err))
		return
	}
	if s.Role == shared.RoleLeader {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("You have chosen to be a Leader.\n%s", promptFor(s)))
	} else {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("You have chosen to be a Member.\n%s", promptFor(s)))
	}
}

// categoryHandler handles the $category command with a DiscordSession interface
func (b *Bot) categoryHandler(session DiscordSession, message *discordgo.MessageCreate) {
	input := commandArg(message.Content, "$category")
	s, err := b.APIPtr.ChooseCategory(message.Author.ID, input)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, renderError(err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("You have chosen %s.\n%s", s.Category, promptFor(s)))
}

// trackHandler handles the $track command with a DiscordSession interface
func (b *Bot) trackHandler(session DiscordSession, message *discordgo.MessageCreate) {
	input := commandArg(message.Content, "$track")
	s, err := b.APIPtr.ChooseTrack(message.Author.ID, input)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, renderError(err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("You have chosen %s.\n%s", s.Track, promptFor(s)))
}

// topicsHandler handles the $topics command with a DiscordSession interface
func (b *Bot) topicsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	// Topic names with spaces are quoted, so split on spaces outside quotes
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	parts, _ := spaceSplitter.Split(message.Content)
	inputs := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		part = strings.Trim(strings.TrimSpace(part), "\"“”")
		if part != "" {
			inputs = append(inputs, part)
		}
	}

	s, err := b.APIPtr.ChooseTopics(message.Author.ID, inputs)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, renderError(err))
		return
	}
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf(
		"You have selected: %s. Your rating is %d%%.\n%s",
		strings.Join(s.SelectedTopics, ", "), s.Rating, promptFor(s)))
}

// freeTextHandler feeds plain messages to sessions waiting on the team name
// or comment step
func (b *Bot) freeTextHandler(session DiscordSession, message *discordgo.MessageCreate) {
	s, ok := b.APIPtr.SessionFor(message.Author.ID)
	if !ok || !s.AwaitingText() {
		return
	}

	switch s.Step {
	case registration.StepTeamName:
		s, err := b.APIPtr.SetTeamName(message.Author.ID, message.Content)
		if err != nil {
			session.ChannelMessageSend(message.ChannelID, renderError(err))
			return
		}
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Your team name is %s.\n%s", s.TeamName, promptFor(s)))

	case registration.StepComment:
		_, err := b.APIPtr.SetComment(message.Author.ID, message.Content)
		if err != nil {
			session.ChannelMessageSend(message.ChannelID, renderError(err))
			return
		}
		session.ChannelMessageSend(message.ChannelID, "Your registration is complete. You've been added to the matching queue.")
	}
}

// matchHandler handles the $match command with a DiscordSession interface
func (b *Bot) matchHandler(session DiscordSession, message *discordgo.MessageCreate) {
	b.APIPtr.Trigger()
	log.Printf("matching pass requested by %s", message.Author.ID)
	session.ChannelMessageSend(message.ChannelID, "Matching process started in the background.")
}

// commandArg returns the text after the command word
func commandArg(content string, command string) string {
	return strings.TrimSpace(strings.TrimPrefix(content, command))
}

// renderError turns a facade error into a user facing message
func renderError(err error) string {
	switch {
	case errors.Is(err, shared.ErrAlreadyRegistered):
		return "You have already registered. Wait for matching."
	case errors.Is(err, shared.ErrTimeout):
		return "No registration in progress. Use $start to begin."
	case errors.Is(err, shared.ErrIdentityMismatch), errors.Is(err, shared.ErrValidation):
		return capitalize(err.Error())
	default:
		log.Println(err)
		return "An unexpected error occured. Please try again or contact support."
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// promptFor renders the prompt for the session's next step
func promptFor(s registration.Session) string {
	var res strings.Builder
	switch s.Step {
	case registration.StepUniversity:
		res.WriteString("Please choose your university with `$university name`:\n")
		for _, u := range catalog.Universities() {
			res.WriteString(fmt.Sprintf("- %s\n", u))
		}

	case registration.StepDepartment:
		res.WriteString("Please choose your department with `$department code`: ")
		res.WriteString(strings.Join(catalog.DepartmentNames(), ", "))

	case registration.StepRole:
		res.WriteString("Choose your role with `$role leader` or `$role member`.")

	case registration.StepTeamName:
		res.WriteString("Please enter your team name:")

	case registration.StepCategory:
		res.WriteString("Choose a track category with `$category name`:\n")
		for _, c := range catalog.Categories() {
			res.WriteString(fmt.Sprintf("- %s\n", c))
		}

	case registration.StepTrack:
		res.WriteString(fmt.Sprintf("Choose a track in %s with `$track name`:\n", s.Category))
		tracks, _ := catalog.TracksInCategory(s.Category)
		for _, t := range tracks {
			res.WriteString(fmt.Sprintf("- %s\n", t))
		}

	case registration.StepTopics:
		res.WriteString("Please select topics you've studied with `$topics \"Topic 1\" \"Topic 2\"`:\n")
		topics, err := catalog.TopicsForTrack(s.Track)
		if err == nil {
			for _, topic := range topics {
				res.WriteString(fmt.Sprintf("- %s (%s)\n", topic.Name, topic.Difficulty))
			}
		}

	case registration.StepComment:
		if s.Role == shared.RoleLeader {
			res.WriteString("Please write a message describing your team and what you are looking for:")
		} else {
			res.WriteString("Please write a short comment about yourself:")
		}

	case registration.StepComplete:
		res.WriteString("Your registration is complete. You've been added to the matching queue.")
	}
	return res.String()
}
