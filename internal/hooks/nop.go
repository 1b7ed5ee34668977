package hooks

import "github.com/erelsgl/family-fair-allocation/types"

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(string)                  = (*NopHooks)(nil).OnTrace
	_ func(int, string, types.Good) = (*NopHooks)(nil).OnPick
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnTrace: h.OnTrace,
		OnPick:  h.OnPick,
	}
}

// Fill returns a copy of h with every nil callback replaced by a no-op.
// A nil h yields NewNop().
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnTrace != nil {
		out.OnTrace = h.OnTrace
	}
	if h.OnPick != nil {
		out.OnPick = h.OnPick
	}

	return out
}

// OnTrace is a no-op implementation.
func (h *NopHooks) OnTrace(msg string) {}

// OnPick is a no-op implementation.
func (h *NopHooks) OnPick(turn int, family string, good types.Good) {}
