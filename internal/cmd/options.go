package cmd

import (
	"fmt"
	"strings"

	diffutilcli "github.com/pspjuth/DiffUtilTcl"
	"github.com/spf13/cobra"
)

// diffFlags holds the ignore/result-style/range/align/regsub flags shared
// by every diffing subcommand; each subcommand registers these on its own
// FlagSet and turns them into an Options via build(). Covers the same
// option families as diffutil.c's option-string parser (ignore flags,
// pivot, range, align, regsub), spelled out as cobra long flags instead
// of Tcl's single-dash switches and brace-quoted lists.
type diffFlags struct {
	ignoreAllSpace bool
	ignoreSpace    bool
	ignoreCase     bool
	ignoreNumbers  bool
	noempty        bool
	pivot          int
	matchStyle     bool
	wordParse      bool
	rangeVals      []int
	alignVals      []int
	regsubLeft     []string
	regsubRight    []string
}

func registerDiffFlags(fs *cobra.Command, f *diffFlags) {
	flags := fs.Flags()
	flags.BoolVar(&f.ignoreAllSpace, "ignore-all-space", false, "ignore all whitespace")
	flags.BoolVar(&f.ignoreSpace, "ignore-space-change", false, "treat runs of whitespace as equal")
	flags.BoolVar(&f.ignoreCase, "ignore-case", false, "fold case before comparing")
	flags.BoolVar(&f.ignoreNumbers, "ignore-numbers", false, "treat any two numeric runs as equal")
	flags.BoolVar(&f.noempty, "noempty", false, "forbid empty-hash elements from the initial match pass")
	flags.IntVar(&f.pivot, "pivot", 0, "max equivalence-class size before an element is forbidden (0: use config/default)")
	flags.BoolVar(&f.matchStyle, "match", false, "emit matched-position pairs instead of change blocks")
	flags.BoolVar(&f.wordParse, "word-parse", false, "widen character-diff changes to word boundaries (diff-strings only)")
	flags.IntSliceVar(&f.rangeVals, "range", nil, "limit comparison to rFrom1,rTo1,rFrom2,rTo2 (rTo=0 means to end)")
	flags.IntSliceVar(&f.alignVals, "align", nil, "require L[i] to align with R[j], given as i1,j1,i2,j2,...")
	flags.StringArrayVar(&f.regsubLeft, "regsub-left", nil, "pattern=replacement applied to the left side before hashing (repeatable)")
	flags.StringArrayVar(&f.regsubRight, "regsub-right", nil, "pattern=replacement applied to the right side before hashing (repeatable)")
}

func (f *diffFlags) build() (diffutilcli.Options, error) {
	opts := diffutilcli.DefaultOptions()
	if cfg.Defaults.IgnoreCase {
		opts.Ignore |= diffutilcli.IgnoreCase
	}
	if cfg.Defaults.IgnoreSpace {
		opts.Ignore |= diffutilcli.IgnoreSpaceChange
	}
	if cfg.Defaults.IgnoreNumbers {
		opts.Ignore |= diffutilcli.IgnoreNumbers
	}
	opts.Noempty = cfg.Defaults.Noempty
	if cfg.Defaults.Pivot > 0 {
		opts.Pivot = cfg.Defaults.Pivot
	}

	if f.ignoreAllSpace {
		opts.Ignore |= diffutilcli.IgnoreAllSpace
	}
	if f.ignoreSpace {
		opts.Ignore |= diffutilcli.IgnoreSpaceChange
	}
	if f.ignoreCase {
		opts.Ignore |= diffutilcli.IgnoreCase
	}
	if f.ignoreNumbers {
		opts.Ignore |= diffutilcli.IgnoreNumbers
	}
	if f.noempty {
		opts.Noempty = true
	}
	if f.pivot > 0 {
		opts.Pivot = f.pivot
	}
	if f.matchStyle {
		opts.ResultStyle = diffutilcli.ResultMatch
	}
	opts.WordParse = f.wordParse

	if len(f.rangeVals) > 0 {
		if len(f.rangeVals) != 4 {
			return opts, diffutilcli.BadArgument{Msg: "--range wants exactly 4 values: rFrom1,rTo1,rFrom2,rTo2"}
		}
		opts.RFrom1 = diffutilcli.Line(f.rangeVals[0])
		opts.RTo1 = diffutilcli.Line(f.rangeVals[1])
		opts.RFrom2 = diffutilcli.Line(f.rangeVals[2])
		opts.RTo2 = diffutilcli.Line(f.rangeVals[3])
	}

	if len(f.alignVals) > 0 {
		if len(f.alignVals)%2 != 0 {
			return opts, diffutilcli.BadArgument{Msg: "--align wants an even number of values: i1,j1,i2,j2,..."}
		}
		for i := 0; i < len(f.alignVals); i += 2 {
			opts.Align = append(opts.Align, diffutilcli.AlignPin{
				I: diffutilcli.Line(f.alignVals[i]),
				J: diffutilcli.Line(f.alignVals[i+1]),
			})
		}
	}

	for _, raw := range f.regsubLeft {
		rule, err := parseRegsubFlag(raw)
		if err != nil {
			return opts, err
		}
		opts.RegsubLeft = append(opts.RegsubLeft, rule)
	}
	for _, raw := range f.regsubRight {
		rule, err := parseRegsubFlag(raw)
		if err != nil {
			return opts, err
		}
		opts.RegsubRight = append(opts.RegsubRight, rule)
	}

	if err := diffutilcli.NormaliseOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseRegsubFlag splits a "pattern=replacement" flag value into a
// RegsubRule. The pattern half may not itself contain "=" (regexp2
// alternation/character classes cover the common cases that would need
// one); the replacement half may, since everything after the first "="
// belongs to it.
func parseRegsubFlag(raw string) (diffutilcli.RegsubRule, error) {
	pattern, replacement, ok := strings.Cut(raw, "=")
	if !ok {
		return diffutilcli.RegsubRule{}, diffutilcli.BadArgument{
			Msg: fmt.Sprintf("malformed regsub rule %q: want pattern=replacement", raw),
		}
	}
	return diffutilcli.RegsubRule{Pattern: pattern, Replacement: replacement}, nil
}
