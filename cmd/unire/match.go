package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avigne/unire"
)

var matchFlags = struct {
	ignoreCase *bool
	invert     *bool
	count      *bool
	only       *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "match <pattern> [file...]",
		Short:   "Print lines matching a pattern",
		Example: `  cat access.log | unire match '\p{Greek}+'`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runMatch,
	}
	matchFlags.ignoreCase = cmd.Flags().BoolP("ignore-case", "i", false, "case-insensitive matching")
	matchFlags.invert = cmd.Flags().BoolP("invert-match", "v", false, "print lines that do not match")
	matchFlags.count = cmd.Flags().BoolP("count", "c", false, "print only the number of matching lines")
	matchFlags.only = cmd.Flags().BoolP("only-matching", "o", false, "print only the matching parts of lines")
	rootCmd.AddCommand(cmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	flags := 0
	if *matchFlags.ignoreCase {
		flags |= unire.IgnoreCase
	}

	re, err := unire.Compile(args[0], flags)
	if err != nil {
		return fmt.Errorf("cannot compile pattern: %w", err)
	}

	total := 0

	process := func(r io.Reader) error {
		n, err := matchLines(cmd.OutOrStdout(), re, r)
		total += n
		return err
	}

	if len(args) == 1 {
		if err := process(os.Stdin); err != nil {
			return err
		}
	} else {
		for _, path := range args[1:] {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}

			err = process(f)
			f.Close()
			if err != nil {
				return err
			}
		}
	}

	if *matchFlags.count {
		fmt.Fprintln(cmd.OutOrStdout(), total)
	}

	if total == 0 {
		return fmt.Errorf("no match")
	}

	return nil
}

func matchLines(w io.Writer, re *unire.Regexp, r io.Reader) (int, error) {
	n := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		line := sc.Text()

		if *matchFlags.only {
			for _, m := range re.FindAllString(line, -1) {
				fmt.Fprintln(w, m)
				n++
			}
			continue
		}

		matched := re.MatchString(line)
		if matched == *matchFlags.invert {
			continue
		}

		n++
		if !*matchFlags.count {
			fmt.Fprintln(w, line)
		}
	}

	return n, sc.Err()
}
