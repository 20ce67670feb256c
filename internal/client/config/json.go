package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vocabbuilder/internal/flagx"
	"github.com/dmitrijs2005/vocabbuilder/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the display delay either as a string
// like "3s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	ServerAddr         string         `json:"server_addr"`
	QuizQuestionCount  int            `json:"quiz_question_count"`
	AnswerDisplayDelay timex.Duration `json:"answer_display_delay"`
	SessionDBPath      string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file given via
// the -c or -config flags. When no file is given the Config is untouched.
// Read or unmarshal errors panic (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerAddr != "" {
		cfg.ServerAddr = jc.ServerAddr
	}
	if jc.QuizQuestionCount > 0 {
		cfg.QuizQuestionCount = jc.QuizQuestionCount
	}
	if jc.AnswerDisplayDelay.Duration > 0 {
		cfg.AnswerDisplayDelay = jc.AnswerDisplayDelay.Duration
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
