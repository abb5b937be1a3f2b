package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/mathsheets/internal/domain"
)

func negCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "neg",
		Short: "Write the negative-number arithmetic sheet only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				res, err := a.sheets.Negative(cmd.Context())
				if err != nil {
					return err
				}
				printSummary(cmd.OutOrStdout(), []domain.SheetResult{res})
				return nil
			})
		},
	}
}

func cubeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cube",
		Short: "Write the cube-geometry sheet only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				res, err := a.sheets.Cube(cmd.Context())
				if err != nil {
					return err
				}
				printSummary(cmd.OutOrStdout(), []domain.SheetResult{res})
				return nil
			})
		},
	}
}
