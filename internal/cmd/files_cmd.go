package cmd

import (
	"fmt"

	diffutilcli "github.com/pspjuth/DiffUtilTcl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFilesCmd() *cobra.Command {
	f := &diffFlags{}
	c := &cobra.Command{
		Use:   "files <file1> <file2>",
		Short: "diff two files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.build()
			if err != nil {
				return err
			}
			chunks, match, err := diffutilcli.DiffFiles(args[0], args[1], &opts)
			if err != nil {
				logger.Error("diff-files failed", zap.String("run_id", runID), zap.Error(err))
				return err
			}
			printResult(cmd, opts.ResultStyle, chunks, match)
			return nil
		},
	}
	registerDiffFlags(c, f)
	return c
}

func printResult(cmd *cobra.Command, style diffutilcli.ResultStyle, chunks []diffutilcli.Chunk, match diffutilcli.MatchResult) {
	out := cmd.OutOrStdout()
	if style == diffutilcli.ResultMatch {
		for i := range match.Left {
			fmt.Fprintf(out, "%d %d\n", match.Left[i], match.Right[i])
		}
		return
	}
	for _, c := range chunks {
		kind := "c"
		switch {
		case c.N1 == 0:
			kind = "a"
		case c.N2 == 0:
			kind = "d"
		}
		fmt.Fprintf(out, "%d,%d %d,%d %s\n", c.Start1, c.N1, c.Start2, c.N2, kind)
	}
}

func init() {
	rootCmd.AddCommand(newFilesCmd())
}
