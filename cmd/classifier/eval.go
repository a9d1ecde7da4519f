package main

import (
	"github.com/spf13/cobra"

	"InvestorClassifier/internal/form"
	"InvestorClassifier/internal/model"
)

var (
	evalRemote bool
	evalJSON   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [profile.json]",
	Short: "Classify a JSON investor profile from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			p   model.InvestorProfile
			err error
		)
		if len(args) == 0 || args[0] == "-" {
			p, err = form.Decode(cmd.InOrStdin())
		} else {
			p, err = form.LoadFile(args[0])
		}
		if err != nil {
			return err
		}

		res, err := evaluate(cmd.Context(), p, evalRemote)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), res, evalJSON)
	},
}

func init() {
	evalCmd.Flags().BoolVar(&evalRemote, "remote", false, "send the profile to the configured server instead of scoring locally")
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(evalCmd)
}
