package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	index, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, index, "# ffind")

	for _, topic := range []string{"find", "grep", "config"} {
		page, err := Get(topic)
		require.NoError(t, err, topic)
		assert.Contains(t, page, "# ffind "+topic)
	}

	_, err = Get("nope")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	topics, err := List()
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "find", "grep"}, topics)
}
