package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/viant/yamlast/parser"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var tokensOnly bool
	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a YAML document stream and print its syntax tree as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 0 || args[0] == "-" {
				src, err = io.ReadAll(cmd.InOrStdin())
			} else {
				src, err = os.ReadFile(args[0])
			}
			if err != nil {
				logger.Error().Err(err).Msg("failed to read input")
				return err
			}

			program, err := parser.New().ParseSource(src)
			if err != nil {
				logger.Error().Err(err).Msg("failed to parse input")
				return err
			}
			logger.Debug().
				Int("documents", len(program.Body)).
				Int("tokens", len(program.Tokens)).
				Msg("parsed stream")

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if tokensOnly {
				return encoder.Encode(program.Tokens)
			}
			return encoder.Encode(program)
		},
	}
	parseCmd.Flags().BoolVar(&tokensOnly, "tokens", false, "print the token stream only")

	rootCmd := &cobra.Command{
		Use:           "yamlast",
		Short:         "Convert YAML into a linear syntax tree and token stream",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(parseCmd)
	return rootCmd
}
