package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unire",
	Short: "Match text with Unicode-property-aware regular expressions",
	Long: `unire matches text against PCRE-flavored regular expressions with
full Unicode property support (\p{Greek}, \p{Bidi_Control}, \p{bc:AL}, ...)
and can inspect how property names and patterns are resolved.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
