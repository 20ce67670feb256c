package config

import "time"

// Config holds runtime settings for the vocabulary CLI.
//
// Fields:
//   - ServerAddr: base URL of the vocabulary API.
//   - QuizQuestionCount: how many questions one quiz session fetches.
//   - AnswerDisplayDelay: how long feedback stays on screen before the
//     session auto-advances to the next question.
//   - SessionDBPath: location of the local session database.
type Config struct {
	ServerAddr         string
	QuizQuestionCount  int
	AnswerDisplayDelay time.Duration
	SessionDBPath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8000"
	c.QuizQuestionCount = 10
	c.AnswerDisplayDelay = 3 * time.Second
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
