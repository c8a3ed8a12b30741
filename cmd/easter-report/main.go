package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/easter-report/internal/config"
	"github.com/username/easter-report/internal/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// exitUsage reports failures outside the report result codes: bad
// arguments, unreadable config. It follows sysexits.h EX_USAGE.
const exitUsage = 64

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	exitCode   int
)

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)

	if logger != nil {
		_ = logger.Sync()
	}
	os.Exit(code)
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	exitCode = 0

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	return exitCode
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "easter-report",
		Short:         "Easter Sunday report generator",
		Long:          "Compute Gregorian Easter Sunday for a set of years (e.g. 2012,2013,2015-2020) and write them as an HTML table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				initLogger("info")
				return err
			}
			cfg.ExpandEnvVars()

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.GetLogLevel())
			} else {
				initLogger(cfg.Log.GetLogLevel())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "easter-report.yaml", "Config file path")

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(checkFilenameCmd())

	return rootCmd
}

func reportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report YEARS",
		Short: "Write Easter Sundays for YEARS into an HTML file",
		Long: "Write Easter Sundays for YEARS into an HTML file.\n\n" +
			"Exit codes: 0 ok, 1 invalid filename, 2 invalid years, 3 I/O error, 64 usage or config error.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if output == "" {
				output = cfg.Report.Output
			}

			generator := report.NewGenerator(report.Options{Title: cfg.Report.Title}, logger)
			result := generator.Run(args[0], output)

			if result == report.ResultOK {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Report written to %s\n", output)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s\n", result)
			}
			exitCode = result.ExitCode()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Report file (defaults to report.output from config)")

	return cmd
}

func checkFilenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-filename NAME",
		Short: "Check whether NAME is an acceptable report destination",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if report.ValidFilename(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], report.ResultInvalidFilename)
			exitCode = report.ResultInvalidFilename.ExitCode()
		},
	}
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

// initFileLogger writes JSON logs to a rotated file
func initFileLogger(logFile string, level string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	rotated := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB; one report run logs a few lines
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})

	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), rotated, parseLevel(level)))
}

// parseLevel falls back to info for unknown level names
func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
