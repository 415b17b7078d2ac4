/* bot.go
 * Contains logic used for creating and running the bot. Requires a discord bot token, and ApiPtr both of which are
 * passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"teammatch-bot/api/api"
)

// startCooldown throttles $start to once per 15 seconds per user
const startCooldown = 15 * time.Second

type Bot struct {
	BotToken string
	APIPtr   *api.API

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

// allowStart reports whether the user's $start is inside the cooldown window
func (b *Bot) allowStart(userID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	lim, ok := b.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(startCooldown), 1)
		b.limiters[userID] = lim
	}
	return lim.Allow()
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	if len(inputString) < len(substring) {
		return false
	}
	for i := 0; i < len(substring); i++ {
		if inputString[i] != substring[i] {
			return false
		}
	}
	return true
}
