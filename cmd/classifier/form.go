package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"InvestorClassifier/internal/form"
)

var (
	formRemote bool
	formJSON   bool
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Answer the questionnaire in the terminal and get a risk profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := form.NewTerminal()
		if err != nil {
			return err
		}
		defer rl.Close()

		out := cmd.OutOrStdout()
		p, err := form.Run(rl, out)
		if errors.Is(err, form.ErrAborted) {
			fmt.Fprintln(out, "aborted")
			return nil
		}
		if err != nil {
			return err
		}

		res, err := evaluate(cmd.Context(), p, formRemote)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		return printResult(out, res, formJSON)
	},
}

func init() {
	formCmd.Flags().BoolVar(&formRemote, "remote", false, "send the answers to the configured server instead of scoring locally")
	formCmd.Flags().BoolVar(&formJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(formCmd)
}
