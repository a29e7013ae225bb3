package diffutil

import "github.com/pspjuth/DiffUtilTcl/internal/diffcore"

// NormaliseOptions validates and tidies opts before it's used: sorts and
// collapses the align list, and rejects Pivot < 1. Call this once after
// filling in an Options value and before any Diff* call.
func NormaliseOptions(opts *Options) error {
	return diffcore.NormaliseOptions(opts)
}
