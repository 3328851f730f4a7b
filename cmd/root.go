package cmd

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/cv-analyzer/internal/analyzer"
	"github.com/spigell/cv-analyzer/internal/extractor"
	"github.com/spigell/cv-analyzer/internal/nlp"
	"github.com/spigell/cv-analyzer/internal/report"
	"github.com/spigell/cv-analyzer/internal/storage"
)

const (
	app       = "cv-analyzer"
	envPrefix = "CV_ANALYZER"
)

type Config struct {
	Model        string              `mapstructure:"model"`
	Extractor    *ExtractorConfig    `mapstructure:"extractor"`
	Report       *ReportConfig       `mapstructure:"report"`
	Thresholds   analyzer.Thresholds `mapstructure:"thresholds"`
	Job          *JobConfig          `mapstructure:"job"`
	S3           *storage.S3Config   `mapstructure:"s3"`
	MaxFileSize  int64               `mapstructure:"max-file-size"`
	MaxLogLength int                 `mapstructure:"max-log-length"`
}

type ExtractorConfig struct {
	Backend string `mapstructure:"backend"`
}

type ReportConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no-color"`
}

type JobConfig struct {
	UserAgent   string        `mapstructure:"user-agent"`
	Timeout     time.Duration `mapstructure:"timeout"`
	HHTokenFile string        `mapstructure:"hh-token-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-analyzer compares a resume with a job description and reports the ATS score and keywords",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults(viper.GetViper())

	if err := viper.BindEnv("job.hh-token-file", "HH_TOKEN_FILE"); err != nil {
		log.Fatalf("binding HH_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model", nlp.DefaultModel)
	v.SetDefault("extractor.backend", extractor.BackendPDF)
	v.SetDefault("report.format", report.FormatText)
	v.SetDefault("report.no-color", false)
	v.SetDefault("thresholds.high", analyzer.DefaultThresholds.High)
	v.SetDefault("thresholds.medium", analyzer.DefaultThresholds.Medium)
	v.SetDefault("job.user-agent", "")
	v.SetDefault("job.timeout", 15*time.Second)
	v.SetDefault("job.hh-token-file", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access-key", "")
	v.SetDefault("s3.access-key-file", "")
	v.SetDefault("s3.secret-key", "")
	v.SetDefault("s3.secret-key-file", "")
	v.SetDefault("s3.use-path-style", false)
	v.SetDefault("max-file-size", 10<<20)
	v.SetDefault("max-log-length", 200)
}

func initConfig() {
	// Values from .env never override the real environment.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional, but a broken one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	err := v.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if err := config.Thresholds.Validate(); err != nil {
		return config, err
	}

	return config, nil
}
