package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_addr":          "http://www.example:9000",
		"quiz_question_count":  5,
		"answer_display_delay": "10s",
		"session_db_path":      "other.db",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://www.example:9000", cfg.ServerAddr)
		assert.Equal(t, 5, cfg.QuizQuestionCount)
		assert.Equal(t, 10*time.Second, cfg.AnswerDisplayDelay)
		assert.Equal(t, "other.db", cfg.SessionDBPath)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ServerAddr:         "http://defaults:1234",
			QuizQuestionCount:  7,
			AnswerDisplayDelay: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerAddr)
		assert.Equal(t, 7, cfg.QuizQuestionCount)
		assert.Equal(t, 42*time.Second, cfg.AnswerDisplayDelay)
	})

	t.Run("partial JSON keeps other fields", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"server_addr": "http://partial:1111",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{QuizQuestionCount: 10, AnswerDisplayDelay: 3 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://partial:1111", cfg.ServerAddr)
		assert.Equal(t, 10, cfg.QuizQuestionCount)
		assert.Equal(t, 3*time.Second, cfg.AnswerDisplayDelay)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
