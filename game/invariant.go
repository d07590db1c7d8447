package game

import "fmt"

// invariant panics when cond is false in builds tagged gamedebug.
// Release builds compile the check away; callers must uphold the
// precondition by construction.
func invariant(cond bool, format string, args ...any) {
	if debugInvariants && !cond {
		panic(fmt.Sprintf("game: invariant violated: "+format, args...))
	}
}
