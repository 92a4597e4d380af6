package config

import (
	"flag"
	"io"
	"os"

	"github.com/dmitrijs2005/ecocity/internal/flagx"
)

// parseFlags populates Config fields from the flags listed in doc.go.
// Unknown arguments are filtered out first; a malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-m", "-v", "-l", "-p", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.CredentialsFile, "f", cfg.CredentialsFile, "credential store file")
	fs.StringVar(&cfg.MessagesDSN, "m", cfg.MessagesDSN, "chat messages database")
	fs.StringVar(&cfg.Variant, "v", cfg.Variant, "screen variant (eco, messenger, all)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Avatar, "p", cfg.Avatar, "default avatar")
	fs.IntVar(&cfg.ChatHistoryLimit, "n", cfg.ChatHistoryLimit, "chat messages kept")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
