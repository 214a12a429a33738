package reactant

import "github.com/antlr-labs/reactant/internal"

// Lane tags a group of optimistic writes (and the store state staged
// alongside them) for independent revert, merging via union-find as the
// writes it tags propagate to downstream computeds.
type Lane = internal.Lane

// StoreRevertHook lets an external store (state kept outside a Signal)
// participate in optimistic rollback: when a transition's lane is aborted
// instead of committed, every hook registered against it is asked to
// revert whatever it staged.
type StoreRevertHook = internal.StoreRevertHook

// RegisterStoreRevertHook ties hook to t's optimistic lane so it is asked
// to revert if t is aborted instead of committed.
func RegisterStoreRevertHook(t *Transition, hook StoreRevertHook) {
	t.inner.Lane().RegisterHook(hook)
}
