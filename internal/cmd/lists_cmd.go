package cmd

import (
	"bufio"
	"os"

	diffutilcli "github.com/pspjuth/DiffUtilTcl"
	"github.com/spf13/cobra"
)

func newListsCmd() *cobra.Command {
	f := &diffFlags{}
	c := &cobra.Command{
		Use:   "lists <list1-file> <list2-file>",
		Short: "diff two newline-separated element lists, 0-based",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listA, err := readLines(args[0])
			if err != nil {
				return err
			}
			listB, err := readLines(args[1])
			if err != nil {
				return err
			}
			opts, err := f.build()
			if err != nil {
				return err
			}
			chunks, match := diffutilcli.DiffLists(listA, listB, &opts)
			printResult(cmd, opts.ResultStyle, chunks, match)
			return nil
		},
	}
	registerDiffFlags(c, f)
	return c
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diffutilcli.BadInput{Msg: "bad file"}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func init() {
	rootCmd.AddCommand(newListsCmd())
}
