//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package lineReader

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/completion"
)

var ErrInterrupted = eris.New("input interrupted")

// Completer answers a Tab press for the text typed so far.
type Completer func(partial string) (completion.Result, error)

type Reader interface {
	// ReadLine shows prompt and blocks until one line was entered.
	// complete may be nil when the question has no completion.
	ReadLine(ctx context.Context, prompt string, complete Completer) (string, error)
}
