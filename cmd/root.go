package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/seqiz/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfg is resolved once per invocation in PersistentPreRunE.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "seqiz",
	Short: "Find the closed form of a number sequence",
	Long: `seqiz classifies a list of terms as a constant, arithmetic, geometric or
quadratic sequence and derives a formula for the nth term.

Terms are integers, decimals or fractions separated by spaces or commas.
The first term is n=1. Put -- before the terms when the first one is negative:

  seqiz classify 2 4 6
  seqiz term --n 10 -- -3,-1,1`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cfg = resolved
		return loggingHook(cfg.LogLevel)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pFlags := rootCmd.PersistentFlags()
	pFlags.String("log-level", "", fmt.Sprintf("Log messages above specified level (%s); overrides SEQIZ_LOG_LEVEL",
		strings.Join(config.LogLevels(), ", ")))
	pFlags.String("format", "", "Output format: text, json or yaml (overrides SEQIZ_FORMAT)")
	pFlags.Bool("no-color", false, "Disable styled text output")
	pFlags.Bool("strict", false, "Reject quadratic formulas with non-integer coefficients (overrides SEQIZ_STRICT)")
	pFlags.Int("precision", 0, fmt.Sprintf("Decimal places shown next to fractional values, 0 to %d (overrides SEQIZ_PRECISION)",
		config.MaxPrecision))

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(extendCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the Config from flags (highest priority), then
// SEQIZ_* env vars, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	c, err := config.ConfigFromEnv()
	if err != nil {
		return c, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
		c.LogLevel = strings.ToLower(c.LogLevel)
	}
	if flags.Changed("format") {
		f, _ := flags.GetString("format")
		c.Format = config.Format(strings.ToLower(f))
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		c.Color = false
	}
	if flags.Changed("strict") {
		c.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("precision") {
		c.Precision, _ = flags.GetInt("precision")
	}

	return c, c.Validate()
}

func loggingHook(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)

	if logrus.IsLevelEnabled(logrus.InfoLevel) {
		logrus.Infof("%s filtering at log level %s", os.Args[0], logrus.GetLevel())
	}
	return nil
}
