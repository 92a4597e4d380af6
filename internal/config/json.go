package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ecocity/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Empty strings and a
// missing chat_history_limit mean "not set" and leave the current Config
// value alone; chat_history_limit may be 0 or negative to keep all messages.
type JsonConfig struct {
	CredentialsFile  string `json:"credentials_file"`
	MessagesDSN      string `json:"messages_dsn"`
	Variant          string `json:"variant"`
	LogLevel         string `json:"log_level"`
	Avatar           string `json:"avatar"`
	ChatHistoryLimit *int   `json:"chat_history_limit"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics when
// the file cannot be read or parsed, as a broken config is a startup error.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.CredentialsFile, jc.CredentialsFile)
	setString(&cfg.MessagesDSN, jc.MessagesDSN)
	setString(&cfg.Variant, jc.Variant)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.Avatar, jc.Avatar)
	if jc.ChatHistoryLimit != nil {
		cfg.ChatHistoryLimit = *jc.ChatHistoryLimit
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
