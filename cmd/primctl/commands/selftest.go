package commands

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-primitives/pkg/selftest"
)

func selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run known-answer tests for every primitive and print a JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := selftest.NewDefaultChecker().Run()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
			if report.Status != selftest.StatusPass {
				return errors.New("self-test failed")
			}
			return nil
		},
	}
}
