package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName = "talent-pool"

	envPrefix = "TALENT_POOL"
)

type Config struct {
	Store     string         `mapstructure:"store"`
	ExportDir string         `mapstructure:"export-dir"`
	Report    *ReportConfig  `mapstructure:"report"`
	Webhook   *WebhookConfig `mapstructure:"webhook"`
	// Filters are the default list criteria, overridden by flags.
	Filters map[string]any `mapstructure:"filters"`
}

type ReportConfig struct {
	Locale   string `mapstructure:"locale"`
	Timezone string `mapstructure:"timezone"`
}

type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	URLFile string        `mapstructure:"url-file"`
	Email   string        `mapstructure:"email"`
	Timeout time.Duration `mapstructure:"timeout"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "talent-pool is a small cli for tracking candidates, ranking them and exporting reports",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talent-pool.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("store", "s", "", "sqlite file or postgres:// dsn holding the roster")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))

	viper.SetDefault("store", appName+".db")
	viper.SetDefault("export-dir", ".")
	viper.SetDefault("report.locale", "en-US")
	viper.SetDefault("report.timezone", "Local")
	viper.SetDefault("webhook.url", "")
	viper.SetDefault("webhook.url-file", "")
	viper.SetDefault("webhook.email", "")
	viper.SetDefault("webhook.timeout", 15*time.Second)
}

func initConfig() {
	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %s", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
	}

	// The default config file may be absent; an explicit one may not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Report == nil {
		config.Report = &ReportConfig{}
	}
	if config.Webhook == nil {
		config.Webhook = &WebhookConfig{}
	}

	return config, nil
}
