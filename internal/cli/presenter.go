//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks

package cli

import (
	"io"

	"github.com/agbru/fibseq/internal/sequence"
)

// SequencePresenter defines how a generated sequence reaches the user.
// It decouples the application from the output format and lets tests
// substitute a mock.
type SequencePresenter interface {
	// PresentSequence writes the last n terms of seq to out.
	PresentSequence(seq sequence.Sequence, n int, out io.Writer) (int, error)
}

// CLISequencePresenter writes the output line expected on a terminal.
type CLISequencePresenter struct{}

// PresentSequence implements SequencePresenter by delegating to
// DisplaySequence. It returns the number of terms written.
func (CLISequencePresenter) PresentSequence(seq sequence.Sequence, n int, out io.Writer) (int, error) {
	return DisplaySequence(out, seq, n)
}
