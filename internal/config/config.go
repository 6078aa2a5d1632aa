package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is read once at startup and passed into every constructor; nothing
// mutates it afterwards.
type Config struct {
	Port string `mapstructure:"port"`

	MerakiBaseURL string `mapstructure:"meraki_base_url"`
	MerakiAPIKey  string `mapstructure:"meraki_api_key"`
	OrgID         string `mapstructure:"org_id"`
	NetID         string `mapstructure:"net_id"`

	SparkMessagesURL string `mapstructure:"spark_messages_url"`
	BotToken         string `mapstructure:"bot_token"`

	TropoAPIURL     string `mapstructure:"tropo_api_url"`
	TropoVoiceToken string `mapstructure:"tropo_voice_token"`

	// Filtering constants. The defaults match the deployment this bot was
	// written for; override per environment.
	GuestTag      string `mapstructure:"guest_tag"`
	GuestSubnet   string `mapstructure:"guest_subnet"`
	APModelPrefix string `mapstructure:"ap_model_prefix"`

	ClientWindowSeconds     int `mapstructure:"client_window_seconds"`
	TopTalkersWindowSeconds int `mapstructure:"top_talkers_window_seconds"`
}

func (c Config) ClientWindow() time.Duration {
	return time.Duration(c.ClientWindowSeconds) * time.Second
}

func (c Config) TopTalkersWindow() time.Duration {
	return time.Duration(c.TopTalkersWindowSeconds) * time.Second
}

// Load reads an optional YAML config file merged with SPARKBOT_* environment
// variables. Environment wins over file, file wins over defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SPARKBOT")
	v.AutomaticEnv()

	v.SetDefault("port", "8097")
	v.SetDefault("meraki_base_url", "https://api.meraki.com/api/v0")
	v.SetDefault("spark_messages_url", "https://api.ciscospark.com/v1/messages")
	// Credentials and identity have no usable default, but viper only maps
	// SPARKBOT_* env vars onto keys it already knows about. Registering
	// them empty keeps env-only deployments working.
	v.SetDefault("meraki_api_key", "")
	v.SetDefault("org_id", "")
	v.SetDefault("net_id", "")
	v.SetDefault("bot_token", "")
	v.SetDefault("tropo_api_url", "")
	v.SetDefault("tropo_voice_token", "")
	v.SetDefault("guest_tag", "guest_wireless")
	v.SetDefault("guest_subnet", "10.4.17")
	v.SetDefault("ap_model_prefix", "MR")
	v.SetDefault("client_window_seconds", 900)
	v.SetDefault("top_talkers_window_seconds", 3600)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}
