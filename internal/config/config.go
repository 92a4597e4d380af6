package config

// Config holds runtime settings for the ecocity CLI.
type Config struct {
	CredentialsFile  string
	MessagesDSN      string
	Variant          string
	LogLevel         string
	Avatar           string
	ChatHistoryLimit int
}

// LoadDefaults populates c with the values the desktop prototypes used.
func (c *Config) LoadDefaults() {
	c.CredentialsFile = "users.txt"
	c.MessagesDSN = "messages.db"
	c.Variant = "eco"
	c.LogLevel = "info"
	c.Avatar = "avatar.png"
	c.ChatHistoryLimit = 200
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
