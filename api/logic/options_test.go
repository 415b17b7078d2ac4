/* options_test.go
 * Contains unit tests for options.go functions
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"teammatch-bot/api/catalog"
)

// TestResolveOption_Exact tests resolution of an exact option name
func TestResolveOption_Exact(t *testing.T) {
	name, ok := ResolveOption("Cairo University", catalog.Universities())

	assert.True(t, ok)
	assert.Equal(t, "Cairo University", name)
}

// TestResolveOption_CaseInsensitive tests that casing does not matter
func TestResolveOption_CaseInsensitive(t *testing.T) {
	name, ok := ResolveOption("cairo university", catalog.Universities())

	assert.True(t, ok)
	assert.Equal(t, "Cairo University", name)
}

// TestResolveOption_Fuzzy tests that a close partial input still resolves
func TestResolveOption_Fuzzy(t *testing.T) {
	name, ok := ResolveOption("django", catalog.Tracks())

	assert.True(t, ok)
	assert.Equal(t, "django", name)
}

// TestResolveOption_NoMatch tests that garbage input is rejected
func TestResolveOption_NoMatch(t *testing.T) {
	_, ok := ResolveOption("xyzzy-9000", catalog.Universities())

	assert.False(t, ok)
}

// TestResolveOption_Empty tests that blank input is rejected
func TestResolveOption_Empty(t *testing.T) {
	_, ok := ResolveOption("   ", catalog.Tracks())

	assert.False(t, ok)
}

// TestResolveOptions_Topics tests multi-select resolution of topic names
func TestResolveOptions_Topics(t *testing.T) {
	valid, err := catalog.TopicNames("django")
	assert.NoError(t, err)

	resolved, invalid := ResolveOptions([]string{"python basics", "Django ORM", "Flux Capacitors"}, valid)

	assert.Equal(t, []string{"Python Basics", "Django ORM"}, resolved)
	assert.Equal(t, []string{"Flux Capacitors"}, invalid)
}

// TestResolveOptions_PrefersExactOverPrefix tests that an input that exactly
// equals one option is not stolen by a longer option containing it
func TestResolveOptions_PrefersExactOverPrefix(t *testing.T) {
	options := []string{"cloud", "cloud security"}

	resolved, invalid := ResolveOptions([]string{"cloud"}, options)

	assert.Empty(t, invalid)
	assert.Equal(t, []string{"cloud"}, resolved)
}
