/* notifier.go
 * Contains the Discord notifier that delivers match announcements and
 * timeout notices over DM. Both parties of a pairing get the same team and
 * profile blocks, only the match details header differs.
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"

	"teammatch-bot/api/shared"
)

// DiscordNotifier delivers DMs through a Discord session
type DiscordNotifier struct {
	Session DiscordSession
}

func NewDiscordNotifier(session DiscordSession) *DiscordNotifier {
	return &DiscordNotifier{Session: session}
}

// NotifyMatch announces a confirmed pairing to one party. Any failure here
// aborts the pairing so it can be retried on a later sweep.
func (n *DiscordNotifier) NotifyMatch(userID string, notice shared.MatchNotice) error {
	channel, err := n.Session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("%w: creating DM channel for %s: %v", shared.ErrNotification, userID, err)
	}

	for _, block := range matchMessageBlocks(userID, notice) {
		if _, err := n.Session.ChannelMessageSend(channel.ID, block); err != nil {
			return fmt.Errorf("%w: sending match details to %s: %v", shared.ErrNotification, userID, err)
		}
	}
	return nil
}

// NotifyTimeout tells a user their registration flow expired
func (n *DiscordNotifier) NotifyTimeout(userID string) error {
	channel, err := n.Session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("%w: creating DM channel for %s: %v", shared.ErrNotification, userID, err)
	}
	if _, err := n.Session.ChannelMessageSend(channel.ID, "Your registration timed out. Use $start to begin again."); err != nil {
		return fmt.Errorf("%w: sending timeout notice to %s: %v", shared.ErrNotification, userID, err)
	}
	return nil
}

// matchMessageBlocks renders the DM sequence for one recipient. The details
// block shows the counterpart; team info and member profile are shared.
func matchMessageBlocks(userID string, notice shared.MatchNotice) []string {
	header := "MATCHING SUCCESS!\n\n**Match Details**\n```yml\n"
	var details string
	if userID == notice.Leader.UserID {
		details = fmt.Sprintf(
			"%sMember Name   : %s\nUniversity    : %s\nDepartment    : %s\nTrack         : %s\nTeam          : %s\n```",
			header, notice.Member.Username, notice.Member.University,
			strings.ToUpper(string(notice.Member.Department)), notice.Member.Track, notice.Leader.TeamName)
	} else {
		details = fmt.Sprintf(
			"%sTeam Leader   : %s\nUniversity    : %s\nDepartment    : %s\nTrack         : %s\nTeam          : %s\n```",
			header, notice.Leader.Username, notice.Leader.University,
			strings.ToUpper(string(notice.Leader.Department)), notice.Leader.Track, notice.Leader.TeamName)
	}

	teamInfo := fmt.Sprintf(
		"**Team Information**\n```\n── Team Leader's Message ──\n%s\n```",
		notice.Leader.TeamComment)

	memberProfile := fmt.Sprintf(
		"**Member Profile**\n```\n── Technical Background ──\n• Track: %s\n• Rating: %d%%\n\n── Topics Studied ──\n%s\n\n── Personal Note ──\n%s\n```",
		notice.Member.Track, notice.Member.Rating,
		strings.Join(notice.Member.SelectedTopics, ", "), notice.Member.Comment)

	contactInfo := "**Next Steps**\n```\nYou can now communicate directly through Discord!\nFeel free to discuss project details and next steps.\n```"

	return []string{details, teamInfo, memberProfile, contactInfo}
}
