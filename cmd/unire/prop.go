package main

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/avigne/unire/ucp"
)

func init() {
	cmd := &cobra.Command{
		Use:     "prop <name>",
		Short:   "Resolve a Unicode property name",
		Example: `  unire prop 'Bidi_Control'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runProp,
	}
	rootCmd.AddCommand(cmd)
}

func runProp(cmd *cobra.Command, args []string) error {
	prop, err := ucp.Resolve(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "name:  %s\n", prop)
	fmt.Fprintf(w, "kind:  %s\n", propKind(prop))

	rt, err := ucp.RangeTable(prop)
	if err != nil {
		var uerr *ucp.UnsupportedError
		if errors.As(err, &uerr) {
			fmt.Fprintln(w, "set:   not derivable from the available Unicode data")
			return nil
		}

		return err
	}

	ranges, count := tableStats(rt)
	fmt.Fprintf(w, "set:   %d codepoints in %d ranges\n", count, ranges)

	return nil
}

func propKind(p ucp.Property) string {
	switch p.(type) {
	case ucp.Any:
		return "any"
	case ucp.CasedLetter:
		return "cased letter group"
	case ucp.Alnum, ucp.Space, ucp.PerlSpace, ucp.Word, ucp.UCNC:
		return "derived class"
	case ucp.Category:
		return "general category"
	case ucp.Binary:
		return "binary property"
	case ucp.Script:
		return "script"
	case ucp.ScriptExt:
		return "script extension"
	case ucp.BidiClass:
		return "bidi class"
	default:
		return "unknown"
	}
}

func tableStats(rt *unicode.RangeTable) (ranges, count int) {
	for _, r := range rt.R16 {
		ranges++
		count += int((r.Hi-r.Lo)/r.Stride) + 1
	}
	for _, r := range rt.R32 {
		ranges++
		count += int((r.Hi-r.Lo)/r.Stride) + 1
	}

	return ranges, count
}
