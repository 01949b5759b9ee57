package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ForkOptions describes the execution environment a unit of work needs from
// the worker process that runs it. A worker started with one set of options
// can serve any request whose options are a subset along every dimension.
type ForkOptions struct {
	// ToolPaths are directories prepended to the worker's PATH.
	ToolPaths []string
	// Env are KEY=VALUE variables the worker process must carry.
	Env []string
	// SharedPaths are directories the executed work may read outside its
	// own build directory.
	SharedPaths []string
}

// IsCompatibleWith reports whether a worker started with o can serve a unit
// of work requiring required. Compatibility is one-directional: every entry
// required along each dimension must be present in o.
func (o ForkOptions) IsCompatibleWith(required ForkOptions) bool {
	return containsAll(o.ToolPaths, required.ToolPaths) &&
		containsAll(o.Env, required.Env) &&
		containsAll(o.SharedPaths, required.SharedPaths)
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// EnvID returns a stable fingerprint of the options, used for logging and
// for tagging worker processes. Ordering within a dimension is irrelevant.
func (o ForkOptions) EnvID() string {
	h := xxhash.New()
	for _, dim := range [][]string{o.ToolPaths, o.Env, o.SharedPaths} {
		sorted := slices.Clone(dim)
		slices.Sort(sorted)
		_, _ = h.WriteString(strings.Join(sorted, "\x1f"))
		_, _ = h.WriteString("\x1e")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
