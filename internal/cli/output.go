// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Example: [DisplaySequence].
//
//   - Format* functions return a formatted string without performing I/O.
//     Example: [FormatSequenceLine].

package cli

import (
	"io"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/sequence"
)

// FormatSequenceLine returns the output line for the last n terms of seq,
// terminated by a newline.
func FormatSequenceLine(seq sequence.Sequence, n int) string {
	return sequence.FormatLastN(seq, n) + "\n"
}

// DisplaySequence writes the output line to out in a single write.
//
// Parameters:
//   - out: The output writer.
//   - seq: The generated sequence.
//   - n: The desired number of trailing terms.
//
// Returns:
//   - int: The number of terms written, min(n, seq.Len()).
//   - error: A wrapped write error, if any.
func DisplaySequence(out io.Writer, seq sequence.Sequence, n int) (int, error) {
	if _, err := io.WriteString(out, FormatSequenceLine(seq, n)); err != nil {
		return 0, apperrors.WrapError(err, "failed to write sequence")
	}
	return max(0, min(n, seq.Len())), nil
}
