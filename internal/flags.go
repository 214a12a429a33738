package internal

// NodeFlags tracks the scheduling state of a Signal/Computed/Effect node.
// clean is the zero value; FlagCheck and FlagDirty are strictly ordered
// (dirty implies check) and a node's state only ever rises during a flush,
// never falls, until it is reset to clean at the end of recompute.
type NodeFlags uint16

const (
	FlagNone NodeFlags = 0

	// FlagCheck means a transitive dependency may have changed; the node
	// must verify before recomputing.
	FlagCheck NodeFlags = 1 << (iota - 1)
	// FlagDirty means the node must recompute unconditionally.
	FlagDirty
	// FlagRecomputingDeps guards against re-entrant recompute (cycle fault)
	// and suppresses duplicate dep links while deps are being replayed.
	FlagRecomputingDeps
	// FlagInHeap marks membership in the live (dirty) height heap.
	FlagInHeap
	// FlagInHeapHeight marks membership in a heap for height-adjustment
	// only; no recompute is necessary when drained.
	FlagInHeapHeight
	// FlagZombie marks a node whose disposal is deferred because a
	// transition needs to observe whether it settles.
	FlagZombie
	// FlagDisposed is terminal; a disposed node never reruns.
	FlagDisposed
)

func (f NodeFlags) has(bit NodeFlags) bool { return f&bit != 0 }

// StatusFlags tracks async/error state independent of scheduling flags.
type StatusFlags uint8

const (
	StatusNone StatusFlags = 0

	StatusPending StatusFlags = 1 << iota
	StatusError
	StatusUninitialized
)

func (f StatusFlags) has(bit StatusFlags) bool { return f&bit != 0 }

// EffectType distinguishes the render phase (runs first, may itself write
// signals) from the user phase (runs second, sees a fully settled render
// pass) of a flush.
type EffectType uint8

const (
	EffectTypePure EffectType = iota
	EffectTypeRender
	EffectTypeUser
)
