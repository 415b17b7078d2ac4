/* rating.go
 * Contains the logic for calculating a member's rating from their selected
 * topics. Pure functions, no side effects
 * Authors: Zachary Bower
 */

package logic

import (
	"math"

	"teammatch-bot/api/catalog"
)

// CalculateRating derives a 0-100 score for a member from their selected
// topics' scores relative to the track's maximum attainable score.
// It receives a track identifier and the selected topic names. Topic names
// that do not belong to the track contribute nothing; the caller constrains
// selection to the track's topic list.
// It returns round(100 * selected / total) capped at 100, 0 for a track with
// no topics, or shared.ErrUnknownTrack if the track has no catalog entry.
func CalculateRating(track string, selectedTopics []string) (int, error) {
	topics, err := catalog.TopicsForTrack(track)
	if err != nil {
		return 0, err
	}

	total := 0
	scoreByName := make(map[string]int, len(topics))
	for _, topic := range topics {
		total += topic.Score
		scoreByName[topic.Name] = topic.Score
	}
	if total == 0 {
		return 0, nil
	}

	selected := 0
	for _, name := range selectedTopics {
		selected += scoreByName[name]
	}

	rating := int(math.Round(100 * float64(selected) / float64(total)))
	if rating > 100 {
		rating = 100
	}
	return rating, nil
}
