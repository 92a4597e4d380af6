// Package config loads runtime configuration for the ecocity CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   credential store file (login:sha256 lines)
//	-m string   SQLite DSN for chat messages
//	-v string   screen variant: eco, messenger or all
//	-l string   log level: debug, info, warn, error
//	-p string   default avatar shown for the logged-in user
//	-n int      number of chat messages kept; 0 or negative keeps all
//
// # JSON schema
//
//	{
//	  "credentials_file": "users.txt",
//	  "messages_dsn": "messages.db",
//	  "variant": "eco",
//	  "log_level": "info",
//	  "avatar": "avatar.png",
//	  "chat_history_limit": 200
//	}
package config
