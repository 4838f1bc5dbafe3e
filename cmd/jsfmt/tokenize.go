package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsfmt/internal/driver"
	"jsfmt/internal/lexer"
	"jsfmt/internal/tokfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Print the token stream of a JavaScript file",
	Long:  `Tokenize runs the lexer over a file and prints every token with its position and leading whitespace`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("max-preserve-newlines", 0, "cap for the reported newline count (0 = unlimited)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxNewlines, err := cmd.Flags().GetInt("max-preserve-newlines")
	if err != nil {
		return fmt.Errorf("failed to get max-preserve-newlines flag: %w", err)
	}
	if outFormat != "pretty" && outFormat != "json" {
		return fmt.Errorf("unknown format: %s", outFormat)
	}

	result, err := driver.Tokenize(args[0], os.Stdin, lexer.Options{MaxPreserveNewlines: maxNewlines})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if outFormat == "json" {
		return tokfmt.JSON(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
	return tokfmt.Pretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
}
