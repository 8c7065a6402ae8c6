package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReadJSON(t *testing.T) {
	t.Run("decodes a valid file", func(t *testing.T) {
		got, err := ReadJSON[sample](writeFile(t, `{"name": "test", "value": 42}`))
		require.NoError(t, err)
		assert.Equal(t, sample{Name: "test", Value: 42}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadJSON[sample]("/nonexistent/path/file.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ReadJSON[sample](writeFile(t, `{"name": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal")
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := ReadJSON[sample](writeFile(t, `{"name": "x", "valeu": 1}`))
		assert.Error(t, err)
	})
}
