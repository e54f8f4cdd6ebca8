package sequence

// ─────────────────────────────────────────────────────────────────────────────
// Fixed Bounds
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultLimit is the inclusive upper bound on generated term values.
	DefaultLimit = 1000

	// DefaultCount is the number of trailing terms written to the output.
	DefaultCount = 15

	// Separator is placed between formatted terms.
	Separator = " "
)

// goldenRatio is phi, used to bound the length of a generated sequence.
const goldenRatio = 1.618033988749895
