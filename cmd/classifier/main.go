package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"InvestorClassifier/internal/config"
	"InvestorClassifier/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "classifier",
	Short: "Investor risk profile classifier",
	Long:  "Scores an investor's self-reported finances, risk attitude and goals, maps the score to a risk profile and suggests an asset mix. Serves an HTTP API and web form, or runs the questionnaire in the terminal.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(config.ResolvePath(cfgFile))
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := c.Validate(); err != nil {
			return eris.Wrap(err, "validate config")
		}
		cfg = c

		l, err := logger.New(cfg.Log)
		if err != nil {
			return eris.Wrap(err, "init logger")
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $CONFIG_PATH or "+config.DefaultPath+")")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
