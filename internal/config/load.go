//go:build !js

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio-widgets/internal/apperr"
)

// Load reads configuration from file and env. Env var overrides use prefix
// PORTFOLIO_, e.g. PORTFOLIO_EMAILJS_SERVICE_ID. PORT is honoured for the
// preview server.
func Load() (Config, error) {
	d := Default()
	v := viper.New()

	v.SetDefault("emailjs.public_key", d.EmailJS.PublicKey)
	v.SetDefault("emailjs.service_id", d.EmailJS.ServiceID)
	v.SetDefault("emailjs.template_id", d.EmailJS.TemplateID)
	v.SetDefault("emailjs.auto_response_id", d.EmailJS.AutoResponseID)
	v.SetDefault("emailjs.endpoint", d.EmailJS.Endpoint)
	v.SetDefault("bootstrap.poll_interval", d.Bootstrap.PollInterval)
	v.SetDefault("bootstrap.max_attempts", d.Bootstrap.MaxAttempts)
	v.SetDefault("status.hide_after", d.Status.HideAfter)
	v.SetDefault("status.fade_out", d.Status.FadeOut)
	v.SetDefault("skills.table_path", d.Skills.TablePath)
	v.SetDefault("skills.db_path", d.Skills.DBPath)
	v.SetDefault("skills.default_percent", d.Skills.DefaultPercent)
	v.SetDefault("skills.animate_delay", d.Skills.AnimateDelay)
	v.SetDefault("skills.selector", d.Skills.Selector)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.site_dir", d.Server.SiteDir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("PORTFOLIO_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, apperr.NewConfigError("read config file", cfgPath, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		// read config file if present
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "PORTFOLIO_SERVER_PORT", "PORT")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the widgets cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Bootstrap.PollInterval <= 0:
		return apperr.NewConfigError("poll interval must be positive", "bootstrap.poll_interval", nil)
	case c.Bootstrap.MaxAttempts <= 0:
		return apperr.NewConfigError("max attempts must be positive", "bootstrap.max_attempts", nil)
	case c.Skills.DefaultPercent < 0 || c.Skills.DefaultPercent > 100:
		return apperr.NewConfigError("default percent must be within 0-100", "skills.default_percent", nil)
	case c.Skills.Selector == "":
		return apperr.NewConfigError("skill selector is empty", "skills.selector", nil)
	}
	return nil
}
