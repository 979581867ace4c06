package tavern

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOutputWritesOneFilePerTopic(t *testing.T) {
	dir := t.TempDir()
	out := NewFileOutput(dir)

	require.NoError(t, out.WriteMessage(TopicCustomerEvents, []byte(`{"a":1}`)))
	require.NoError(t, out.WriteMessage(TopicCustomerEvents, []byte(`{"a":2}`)))
	require.NoError(t, out.WriteMessage(TopicEconomyEvents, []byte(`{"b":1}`)))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "customer_events.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `{"a":1}`, lines[0])

	_, err = os.Stat(filepath.Join(dir, "economy_events.jsonl"))
	assert.NoError(t, err)
}
