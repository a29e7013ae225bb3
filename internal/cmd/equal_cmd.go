package cmd

import (
	"fmt"

	diffutilcli "github.com/pspjuth/DiffUtilTcl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEqualCmd() *cobra.Command {
	var noCase, ignoreKey, binary bool
	c := &cobra.Command{
		Use:   "equal <file1> <file2>",
		Short: "report whether two files are byte-identical",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eq, err := diffutilcli.FilesEqual(args[0], args[1], diffutilcli.FilesEqualOptions{
				NoCase:    noCase,
				IgnoreKey: ignoreKey,
				Binary:    binary,
			})
			if err != nil {
				logger.Error("equal failed", zap.String("run_id", runID), zap.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eq)
			if !eq {
				return errNotEqual
			}
			return nil
		},
		SilenceUsage: true,
	}
	c.Flags().BoolVar(&noCase, "ignore-case", false, "case-insensitive byte comparison")
	c.Flags().BoolVar(&ignoreKey, "ignore-key", false, "tolerate differing RCS/CVS/SVN $Keyword: body$ bodies")
	c.Flags().BoolVar(&binary, "binary", false, "skip the text readback path; a size mismatch fails fast")
	return c
}

// errNotEqual signals a clean "files differ" outcome through the normal
// cobra error path so the process exit code reflects it, without cobra
// printing a second, misleading "Error:" line (the SilenceErrors set in
// init handles that).
type notEqualError struct{}

func (notEqualError) Error() string { return "" }

var errNotEqual = notEqualError{}

func init() {
	c := newEqualCmd()
	c.SilenceErrors = true
	rootCmd.AddCommand(c)
}
