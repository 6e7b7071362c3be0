// pkg/help/help_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (embedded topic files)
// PURPOSE: Test embedded topic loading and the generated config topic

package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scopelink/scopelink/pkg/cobrax/topics"
)

var _ topics.Source = (*Store)(nil)

func TestNewStore(t *testing.T) {
	// Execute
	store, err := NewStore()

	// Verify: topics are sorted and the generated topic is present
	require.NoError(t, err)
	names := make([]string, 0, len(store.List()))
	for _, topic := range store.List() {
		names = append(names, topic.Name)
	}
	assert.Equal(t, []string{"config", "linking", "patterns"}, names)
}

func TestStore_Lookup(t *testing.T) {
	// Setup
	store, err := NewStore()
	require.NoError(t, err)

	// Execute
	topic, ok := store.Lookup("linking")

	// Verify
	require.True(t, ok)
	assert.Equal(t, "How scopelink decides what to link and where link sources come from.", topic.Summary)
	assert.Contains(t, topic.Content, "one hop deep")
}

func TestStore_LookupUnknown(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, ok := store.Lookup("nonsense")

	assert.False(t, ok)
}

func TestConfigTopicWrapsDefaults(t *testing.T) {
	// Setup
	store, err := NewStore()
	require.NoError(t, err)

	// Execute
	topic, ok := store.Lookup("config")

	// Verify: generated from the embedded defaults, not a copy
	require.True(t, ok)
	assert.Equal(t, "Configuration files, layering, and defaults", topic.Summary)
	assert.Contains(t, topic.Content, "```toml")
	assert.Contains(t, topic.Content, `bin = "npm"`)
	assert.Contains(t, topic.Content, "SCOPELINK_MANAGER_BIN")
}

func TestEveryTopicHasSummary(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, topic := range store.List() {
		assert.NotEmpty(t, topic.Summary, "topic %s has no summary line", topic.Name)
		assert.NotEmpty(t, topic.Content, "topic %s has no content", topic.Name)
	}
}
