package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// Execute runs the command line and exits non-zero on any failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the single error boundary: every failure, whatever its kind, is
// reported as "<program> Error: <message>".
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s Error: %s\n", programName(os.Args[0]), err)
		return 1
	}
	return 0
}

type rootOptions struct {
	debug   bool
	config  string
	workdir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "mathsheets",
		Short:         "Generate printable math practice worksheets as HTML",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app) error {
				res, err := a.sheets.All(cmd.Context())
				printSummary(cmd.OutOrStdout(), res)
				return err
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .mathsheets/logs/mathsheets.log")
	cmd.PersistentFlags().StringVar(&opts.config, "config", "", "config file (default: ./mathsheets.yaml when present)")
	cmd.PersistentFlags().StringVarP(&opts.workdir, "workdir", "C", "", "run as if started in this directory")

	cmd.AddCommand(negCmd(opts))
	cmd.AddCommand(cubeCmd(opts))
	cmd.AddCommand(initCmd(opts))
	cmd.AddCommand(versionCmd())
	return cmd
}

// programName is the executable base name without extension.
func programName(arg0 string) string {
	base := filepath.Base(arg0)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." {
		return "mathsheets"
	}
	return name
}
