package cmd

import (
	"fmt"

	diffutilcli "github.com/pspjuth/DiffUtilTcl"
	"github.com/spf13/cobra"
)

func newStringsCmd() *cobra.Command {
	f := &diffFlags{}
	c := &cobra.Command{
		Use:   "strings <string1> <string2>",
		Short: "diff two strings at character granularity, 0-based",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.build()
			if err != nil {
				return err
			}
			chunks, match := diffutilcli.DiffStrings(args[0], args[1], &opts)
			printResult(cmd, opts.ResultStyle, chunks, match)
			return nil
		},
	}
	registerDiffFlags(c, f)
	return c
}

func newChunksCmd() *cobra.Command {
	f := &diffFlags{}
	c := &cobra.Command{
		Use:   "chunks <string1> <string2>",
		Short: "print the alternating equal/different substring trace between two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.build()
			if err != nil {
				return err
			}
			pieces := diffutilcli.DiffStringsChunks(args[0], args[1], &opts)
			out := cmd.OutOrStdout()
			for i, p := range pieces {
				fmt.Fprintf(out, "%d: %q\n", i, p)
			}
			return nil
		},
	}
	registerDiffFlags(c, f)
	return c
}

func init() {
	rootCmd.AddCommand(newStringsCmd())
	rootCmd.AddCommand(newChunksCmd())
}
