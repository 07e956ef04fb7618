package commands

import (
	"errors"
	"io"
	"os"

	"github.com/j3din00b/modulus-sym/internal/app"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// stdio selects standard input or output in place of a file.
const stdio = "-"

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the configured outputs over an input table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			configPath, _ := cmd.Flags().GetString("config")
			inputPath, _ := cmd.Flags().GetString("input")
			outputPath, _ := cmd.Flags().GetString("output")
			metricsPath, _ := cmd.Flags().GetString("metrics")

			input := cmd.InOrStdin()
			if inputPath != stdio {
				f, openErr := os.Open(inputPath)
				if openErr != nil {
					return zerr.With(zerr.Wrap(openErr, "failed to open input"), "path", inputPath)
				}
				defer func() { _ = f.Close() }()
				input = f
			}

			var output io.Writer = cmd.OutOrStdout()
			if outputPath != stdio {
				f, createErr := os.Create(outputPath)
				if createErr != nil {
					return zerr.With(zerr.Wrap(createErr, "failed to create output"), "path", outputPath)
				}
				defer func() {
					err = errors.Join(err, f.Close())
				}()
				output = f
			}

			return c.app.Eval(cmd.Context(), app.EvalOptions{
				ConfigPath:  configPath,
				Input:       input,
				Output:      output,
				MetricsPath: metricsPath,
			})
		},
	}
	cmd.Flags().StringP("config", "c", "lambdify.yaml", "Path to the configuration file")
	cmd.Flags().StringP("input", "i", stdio, "Input CSV file, - for stdin")
	cmd.Flags().StringP("output", "o", stdio, "Output CSV file, - for stdout")
	cmd.Flags().String("metrics", "", "Write Prometheus metrics to this file")
	return cmd
}
