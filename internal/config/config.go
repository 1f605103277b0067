package config

import "time"

// Config holds widget and preview settings.
type Config struct {
	EmailJS   EmailJSConfig
	Bootstrap BootstrapConfig
	Status    StatusConfig
	Skills    SkillsConfig
	Server    ServerConfig
	Log       LogConfig
}

// EmailJSConfig holds the public identifiers of the EmailJS account.
type EmailJSConfig struct {
	PublicKey      string `mapstructure:"public_key"`
	ServiceID      string `mapstructure:"service_id"`
	TemplateID     string `mapstructure:"template_id"`
	AutoResponseID string `mapstructure:"auto_response_id"`
	Endpoint       string
}

// BootstrapConfig bounds the wait for the EmailJS global.
type BootstrapConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
}

type StatusConfig struct {
	HideAfter time.Duration `mapstructure:"hide_after"`
	FadeOut   time.Duration `mapstructure:"fade_out"`
}

// SkillsConfig selects the skill table source. DBPath wins over TablePath;
// with neither set the compiled-in table is used.
type SkillsConfig struct {
	TablePath      string        `mapstructure:"table_path"`
	DBPath         string        `mapstructure:"db_path"`
	DefaultPercent int           `mapstructure:"default_percent"`
	AnimateDelay   time.Duration `mapstructure:"animate_delay"`
	Selector       string
}

type ServerConfig struct {
	Port    string
	SiteDir string `mapstructure:"site_dir"`
}

type LogConfig struct {
	Level string
	File  string
}

// Default returns the settings the site ships with.
func Default() Config {
	return Config{
		EmailJS: EmailJSConfig{
			PublicKey:      "zZDaIpZl3WuCShFIx",
			ServiceID:      "service_6rxo3z1",
			TemplateID:     "template_gbmelhl",
			AutoResponseID: "",
			Endpoint:       "https://api.emailjs.com/api/v1.0/email/send",
		},
		Bootstrap: BootstrapConfig{
			PollInterval: 100 * time.Millisecond,
			MaxAttempts:  50,
		},
		Status: StatusConfig{
			HideAfter: 5 * time.Second,
			FadeOut:   300 * time.Millisecond,
		},
		Skills: SkillsConfig{
			DefaultPercent: 75,
			AnimateDelay:   200 * time.Millisecond,
			Selector:       ".skill-tag",
		},
		Server: ServerConfig{
			Port:    "8080",
			SiteDir: "./site",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
