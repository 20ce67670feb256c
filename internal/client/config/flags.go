package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vocabbuilder/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the vocabulary API (default from Config)
//	-n int      quiz question count (default from Config)
//	-d int      answer display delay in seconds (default from Config)
//	-s string   session database path (default from Config)
//
// Note: os.Args is filtered to only include the flags handled here, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "base URL of the vocabulary API")
	fs.IntVar(&cfg.QuizQuestionCount, "n", cfg.QuizQuestionCount, "number of questions per quiz")
	displayDelay := fs.Int("d", int(cfg.AnswerDisplayDelay.Seconds()), "answer display delay (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AnswerDisplayDelay = time.Duration(*displayDelay) * time.Second
}
