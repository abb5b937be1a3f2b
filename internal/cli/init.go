package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mathsheets/internal/infra/fsworkspace"
	"github.com/aalvaropc/mathsheets/internal/usecase"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter mathsheets.yaml and sheet.css",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveWorkdir(opts.workdir)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized mathsheets in %s\n", root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return c
}
