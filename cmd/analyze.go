package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-analyzer/internal/analyzer"
	"github.com/spigell/cv-analyzer/internal/extractor"
	"github.com/spigell/cv-analyzer/internal/headhunter"
	"github.com/spigell/cv-analyzer/internal/jobsource"
	"github.com/spigell/cv-analyzer/internal/logger"
	"github.com/spigell/cv-analyzer/internal/nlp"
	"github.com/spigell/cv-analyzer/internal/report"
	"github.com/spigell/cv-analyzer/internal/secrets"
	"github.com/spigell/cv-analyzer/internal/storage"
)

const envHHToken = "HH_TOKEN"

var errMissingInput = errors.New("both a resume and a job description are required")

type analysisInput struct {
	Resume string
	Job    string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a resume with a job description",
	Long: `Compare a resume with a job description.

The resume is a local file or s3://bucket/key (PDF, DOCX or plain text).
The job description is inline text, a file (file:<path> or @path), "-" for stdin,
a web page URL or a hh.ru vacancy (hh:<id> or its URL).`,
	Example: `  cv-analyzer analyze --resume cv.pdf --job hh:93353083
  cv-analyzer analyze -r s3://resumes/cv.pdf --job-file job.txt -o json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "resume location: local path or s3://bucket/key")
	analyzeCmd.Flags().String("job", "", "job description: text, @file, -, URL or hh:<vacancy id>")
	analyzeCmd.Flags().String("job-file", "", "read the job description from this file")
	analyzeCmd.Flags().Bool("no-input", false, "never prompt for missing inputs")
	analyzeCmd.Flags().StringP("format", "o", "", "report format: text or json")
	analyzeCmd.Flags().Bool("no-color", false, "disable colors in the text report")
	analyzeCmd.Flags().StringP("model", "m", "", "linguistic model name (see the models command)")
	analyzeCmd.Flags().String("backend", "", "pdf extraction backend: pdf or fitz")

	viper.BindPFlag("report.format", analyzeCmd.Flags().Lookup("format"))
	viper.BindPFlag("report.no-color", analyzeCmd.Flags().Lookup("no-color"))
	viper.BindPFlag("model", analyzeCmd.Flags().Lookup("model"))
	viper.BindPFlag("extractor.backend", analyzeCmd.Flags().Lookup("backend"))
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the cv-analyzer", zap.String("version", version), zap.Any("config", redacted(config)))

	in, err := collectInput(cmd)
	if err != nil {
		logger.Fatal("collecting input", zap.Error(err))
	}

	if err := runAnalysis(ctx, config, in, cmd.OutOrStdout(), logger); err != nil {
		logger.Error("analysis failed", zap.Error(err))
		color.New(color.FgRed).Fprintln(os.Stderr, analyzer.UserMessage(err))
		os.Exit(1)
	}
}

// runAnalysis loads both documents, runs the pipeline and renders the report.
func runAnalysis(ctx context.Context, config *Config, in analysisInput, w io.Writer, log *zap.Logger) error {
	if strings.TrimSpace(in.Resume) == "" || strings.TrimSpace(in.Job) == "" {
		return fmt.Errorf("%w: %w", analyzer.ErrEmptyResume, errMissingInput)
	}

	renderer, err := report.NewRenderer(config.Report.Format, config.Report.NoColor)
	if err != nil {
		return err
	}

	model, err := nlp.Load(config.Model)
	if err != nil {
		return err
	}

	ex, err := extractor.New(config.Extractor.Backend, log)
	if err != nil {
		return err
	}

	hhToken, err := resolveHHToken(config)
	if err != nil {
		return err
	}

	hh := headhunter.New(ctx, log, hhToken)
	if config.Job.UserAgent != "" {
		hh.UserAgent = config.Job.UserAgent
	}
	if config.Job.Timeout > 0 {
		hh.HTTPClient.Timeout = config.Job.Timeout
	}

	fetcher := jobsource.NewFetcher(config.Job.Timeout, config.MaxFileSize, config.Job.UserAgent, log)
	jobs := jobsource.NewLoader(fetcher, hh, config.MaxFileSize, log)

	job, err := jobs.Load(ctx, jobsource.ParseRef(in.Job))
	if err != nil {
		if errors.Is(err, jobsource.ErrEmptyReference) {
			return fmt.Errorf("%w: %w", analyzer.ErrEmptyJobDescription, err)
		}
		return fmt.Errorf("load job description: %w", err)
	}

	files := storage.NewLoader(config.S3, config.MaxFileSize, log)

	file, err := files.Load(ctx, in.Resume)
	if err != nil {
		return fmt.Errorf("load resume: %w", err)
	}

	a := analyzer.New(ex, model, analyzer.Config{
		Thresholds:   config.Thresholds,
		MaxLogLength: config.MaxLogLength,
	}, log)

	result, err := a.Analyze(analyzer.Resume{Name: file.Name, Data: file.Data}, job.Text)
	if err != nil {
		return err
	}

	return renderer.Render(w, report.Report{
		Resume:   file.Name,
		Job:      job.Source,
		JobTitle: job.Title,
		Result:   result,
	})
}

func collectInput(cmd *cobra.Command) (analysisInput, error) {
	in := analysisInput{
		Resume: cmd.Flag("resume").Value.String(),
		Job:    cmd.Flag("job").Value.String(),
	}

	if jobFile := cmd.Flag("job-file").Value.String(); jobFile != "" {
		if in.Job != "" {
			return in, errors.New("--job and --job-file are mutually exclusive")
		}
		in.Job = "file:" + jobFile
	}

	noInput := cmd.Flag("no-input").Value.String() == "true"
	if noInput || !isTerminal(os.Stdin) {
		return in, nil
	}

	var err error
	if strings.TrimSpace(in.Resume) == "" {
		in.Resume, err = ask("Resume (path or s3://bucket/key)")
		if err != nil {
			return in, err
		}
	}

	if strings.TrimSpace(in.Job) == "" {
		in.Job, err = ask("Job description (text, @file, URL or hh:<id>)")
		if err != nil {
			return in, err
		}
	}

	return in, nil
}

func ask(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("value is required")
			}
			return nil
		},
	}
	return prompt.Run()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// resolveHHToken returns an optional hh.ru token. Vacancies are public, so
// a missing token is not an error.
func resolveHHToken(config *Config) (string, error) {
	if strings.TrimSpace(config.Job.HHTokenFile) == "" && strings.TrimSpace(os.Getenv(envHHToken)) == "" {
		return "", nil
	}

	return secrets.Load(secrets.Source{
		Name: "headhunter token",
		Env:  envHHToken,
		File: config.Job.HHTokenFile,
	})
}

// redacted copies the config without inline credentials for logging.
func redacted(config *Config) Config {
	c := *config
	if c.S3 != nil {
		s3 := *c.S3
		if s3.AccessKey != "" {
			s3.AccessKey = "***"
		}
		if s3.SecretKey != "" {
			s3.SecretKey = "***"
		}
		c.S3 = &s3
	}
	return c
}
