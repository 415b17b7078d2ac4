/* handlers_test.go
 * Contains unit tests for bot command handlers using mock Discord session
 * AI-Generated
 */

package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"teammatch-bot/api/api"
)

// createTestBot creates a Bot instance with a mock API for testing
func createTestBot() *Bot {
	b, _ := NewBot("test_token", api.NewTestAPI(api.NewMockStore(), api.NewMockNotifier()))
	return b
}

// createMockMessage creates a mock Discord message for testing
func createMockMessage(content, userID, username, channelID string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content:   content,
			ChannelID: channelID,
			Author: &discordgo.User{
				ID:       userID,
				Username: username,
			},
		},
	}
}

// send routes one message through the full handler chain
func send(b *Bot, session *MockDiscordSession, userID, username, content string) {
	b.newMessageHandler(session, createMockMessage(content, userID, username, "channel123"), "bot_id")
}

// region routing tests

func TestNewMessageHandler_IgnoresOwnMessages(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$helpbot", "bot_id", "TheBot", "channel123")

	bot.newMessageHandler(mockSession, message, "bot_id")

	assert.Empty(t, mockSession.SentMessages)
}

func TestNewMessageHandler_UnknownCommand(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$frobnicate")

	assert.Contains(t, mockSession.GetLastMessage().Content, "Invalid command")
}

func TestNewMessageHandler_PlainTextWithoutSessionIsIgnored(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "just chatting in the channel")

	assert.Empty(t, mockSession.SentMessages)
}

// region helpbot tests

func TestHelpMessage_ListsCommands(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$helpbot")

	content := mockSession.GetLastMessage().Content
	for _, cmd := range []string{"$start", "$university", "$department", "$role", "$category", "$track", "$topics", "$match"} {
		assert.Contains(t, content, cmd)
	}
}

// region start tests

func TestStart_BeginsFlow(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$start")

	content := mockSession.GetLastMessage().Content
	assert.Contains(t, content, "choose your university")
	assert.Contains(t, content, "Cairo University")
}

func TestStart_Cooldown(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$start")
	send(bot, mockSession, "user123", "TestUser", "$start")

	assert.Contains(t, mockSession.GetLastMessage().Content, "Please wait")
}

func TestStart_AlreadyRegisteredMember(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	registerTestMember(t, bot, mockSession, "user123", "TestUser")
	mockSession.ClearMessages()

	// Fresh limiter state for the second $start
	bot.limiters = make(map[string]*rate.Limiter)

	send(bot, mockSession, "user123", "TestUser", "$start")

	assert.Contains(t, mockSession.GetLastMessage().Content, "already registered")
}

// region registration flow tests

// registerTestMember walks a member through the entire flow via messages
func registerTestMember(t *testing.T, bot *Bot, mockSession *MockDiscordSession, userID, username string) {
	t.Helper()
	send(bot, mockSession, userID, username, "$start")
	send(bot, mockSession, userID, username, "$university Cairo University")
	send(bot, mockSession, userID, username, "$department cs")
	send(bot, mockSession, userID, username, "$role member")
	send(bot, mockSession, userID, username, "$category Backend Frameworks")
	send(bot, mockSession, userID, username, "$track django")
	send(bot, mockSession, userID, username, `$topics "Python Basics" "Django ORM"`)
	send(bot, mockSession, userID, username, "I enjoy backend work")
}

func TestMemberFlow_EndToEnd(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$start")
	send(bot, mockSession, "user123", "TestUser", "$university Cairo University")
	assert.Contains(t, mockSession.GetLastMessage().Content, "You have chosen Cairo University.")

	send(bot, mockSession, "user123", "TestUser", "$department cs")
	assert.Contains(t, mockSession.GetLastMessage().Content, "You have chosen CS department.")

	send(bot, mockSession, "user123", "TestUser", "$role member")
	assert.Contains(t, mockSession.GetLastMessage().Content, "You have chosen to be a Member.")

	send(bot, mockSession, "user123", "TestUser", "$category Backend Frameworks")
	send(bot, mockSession, "user123", "TestUser", "$track django")
	content := mockSession.GetLastMessage().Content
	assert.Contains(t, content, "You have chosen django.")
	assert.Contains(t, content, "Python Basics")

	send(bot, mockSession, "user123", "TestUser", `$topics "Python Basics" "Django ORM"`)
	assert.Contains(t, mockSession.GetLastMessage().Content, "Your rating is 14%.")

	send(bot, mockSession, "user123", "TestUser", "I enjoy backend work")
	assert.Contains(t, mockSession.GetLastMessage().Content, "registration is complete")

	assert.True(t, bot.APIPtr.State.IsRegistered("user123"))
	pending := bot.APIPtr.State.PendingMembers("django")
	require.Len(t, pending, 1)
	assert.Equal(t, "I enjoy backend work", pending[0].Comment)
}

func TestLeaderFlow_EndToEnd(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "lead1", "LeaderUser", "$start")
	send(bot, mockSession, "lead1", "LeaderUser", "$university Cairo University")
	send(bot, mockSession, "lead1", "LeaderUser", "$department cs")
	send(bot, mockSession, "lead1", "LeaderUser", "$role leader")
	assert.Contains(t, mockSession.GetLastMessage().Content, "You have chosen to be a Leader.")
	assert.Contains(t, mockSession.GetLastMessage().Content, "enter your team name")

	send(bot, mockSession, "lead1", "LeaderUser", "code crushers")
	assert.Contains(t, mockSession.GetLastMessage().Content, "Your team name is code crushers.")

	send(bot, mockSession, "lead1", "LeaderUser", "$category Backend Frameworks")
	send(bot, mockSession, "lead1", "LeaderUser", "$track django")
	send(bot, mockSession, "lead1", "LeaderUser", "we meet twice a week")
	assert.Contains(t, mockSession.GetLastMessage().Content, "registration is complete")

	leaders := bot.APIPtr.State.PendingLeaders("django")
	require.Len(t, leaders, 1)
	assert.Equal(t, "code crushers", leaders[0].TeamName)
}

func TestInvalidInput_RepromptsSameStep(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$start")
	send(bot, mockSession, "user123", "TestUser", "$university Hogwarts")
	assert.Contains(t, mockSession.GetLastMessage().Content, "not a listed university")

	// The step did not advance, the right input still works
	send(bot, mockSession, "user123", "TestUser", "$university Cairo University")
	assert.Contains(t, mockSession.GetLastMessage().Content, "You have chosen Cairo University.")
}

func TestStep_WithoutSession(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$university Cairo University")

	assert.Contains(t, mockSession.GetLastMessage().Content, "Use $start to begin")
}

func TestFuzzyOptionResolution(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$start")
	send(bot, mockSession, "user123", "TestUser", "$university cairo university")

	assert.Contains(t, mockSession.GetLastMessage().Content, "You have chosen Cairo University.")
}

// region match tests

func TestMatchCommand_TriggersBackgroundPass(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	send(bot, mockSession, "user123", "TestUser", "$match")

	assert.Contains(t, mockSession.GetLastMessage().Content, "Matching process started in the background.")
}

// region prompt rendering tests

func TestPromptFor_TopicsShowsDifficulty(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	send(bot, mockSession, "user123", "TestUser", "$start")
	send(bot, mockSession, "user123", "TestUser", "$university Cairo University")
	send(bot, mockSession, "user123", "TestUser", "$department cs")
	send(bot, mockSession, "user123", "TestUser", "$role member")
	send(bot, mockSession, "user123", "TestUser", "$category Backend Frameworks")
	send(bot, mockSession, "user123", "TestUser", "$track django")

	content := mockSession.GetLastMessage().Content
	assert.Contains(t, content, "Python Basics (beginner)")
	assert.Contains(t, content, "Authentication (advanced)")
}

func TestTopicsHandler_UnknownTopic(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	send(bot, mockSession, "user123", "TestUser", "$start")
	send(bot, mockSession, "user123", "TestUser", "$university Cairo University")
	send(bot, mockSession, "user123", "TestUser", "$department cs")
	send(bot, mockSession, "user123", "TestUser", "$role member")
	send(bot, mockSession, "user123", "TestUser", "$category Backend Frameworks")
	send(bot, mockSession, "user123", "TestUser", "$track django")

	send(bot, mockSession, "user123", "TestUser", fmt.Sprintf("$topics %q", "Quantum Flux"))

	assert.Contains(t, strings.ToLower(mockSession.GetLastMessage().Content), "unknown topics")
}
