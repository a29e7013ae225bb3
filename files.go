package diffutil

import (
	"github.com/pspjuth/DiffUtilTcl/internal/diffcore"
	"github.com/pspjuth/DiffUtilTcl/internal/element"
	"github.com/pspjuth/DiffUtilTcl/internal/ioadapt"
)

// DiffFiles diffs two files line by line and returns a Chunk list (or a
// MatchResult, depending on opts.ResultStyle). 1-based line numbers,
// following difffiles.c.
func DiffFiles(path1, path2 string, opts *Options) ([]Chunk, MatchResult, error) {
	left, right, err := openLineSources(path1, path2, opts)
	if err != nil {
		return nil, MatchResult{}, err
	}
	j := runLcs(left, right, opts)
	chunks, match := diffcore.BuildResultFromJ(opts, diffcore.Line(left.Len()), diffcore.Line(right.Len()), j)
	return chunks, match, nil
}

func openLineSources(path1, path2 string, opts *Options) (Source, Source, error) {
	f1, err := ioadapt.Open(path1)
	if err != nil {
		return nil, nil, BadInput{"bad file"}
	}
	defer f1.Close()
	f2, err := ioadapt.Open(path2)
	if err != nil {
		return nil, nil, BadInput{"bad file"}
	}
	defer f2.Close()

	right, err := element.NewLineSource(f2, opts, false)
	if err != nil {
		return nil, nil, BadInput{"bad file"}
	}
	left, err := element.NewLineSource(f1, opts, true)
	if err != nil {
		return nil, nil, BadInput{"bad file"}
	}

	var leftSrc, rightSrc Source = left, right
	if opts.RFrom1 > 1 || opts.RTo1 > 0 {
		leftSrc = element.Range(left, int(opts.RFrom1), int(opts.RTo1))
	}
	if opts.RFrom2 > 1 || opts.RTo2 > 0 {
		rightSrc = element.Range(right, int(opts.RFrom2), int(opts.RTo2))
	}
	return leftSrc, rightSrc, nil
}
