package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avigne/unire/syntax"
)

func init() {
	cmd := &cobra.Command{
		Use:     "explain <pattern>",
		Short:   "Show the engine-ready translation of a pattern",
		Example: `  unire explain '\p{bc:AL}+\X'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runExplain,
	}
	rootCmd.AddCommand(cmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	p, err := syntax.NewPreprocessor(args[0], 0)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if p.IsSupported() {
		fmt.Fprintln(w, "engine:  regexp (stdlib)")
		fmt.Fprintf(w, "pattern: %s\n", p.StdPattern())
		return nil
	}

	pattern, groups := p.FallbackPattern()

	fmt.Fprintln(w, "engine:  regexp2 (fallback)")
	fmt.Fprintf(w, "pattern: %s\n", pattern)
	if len(groups) > 0 {
		fmt.Fprintf(w, "groups:  %d renamed capture groups\n", len(groups))
	}

	return nil
}
