package promptSequence

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/external/probe"
	"github.com/t-kuni/jobconf/domain/model/patch"
	"github.com/t-kuni/jobconf/domain/repository/config"
	"github.com/t-kuni/jobconf/domain/system/lineReader"
)

type State int

const (
	StateJobDirectory State = iota
	StateBuilderHost
	StateBuilderPort
	StateBrokerHost
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateJobDirectory:
		return "job directory"
	case StateBuilderHost:
		return "builder host"
	case StateBuilderPort:
		return "builder port"
	case StateBrokerHost:
		return "broker host"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

type Options struct {
	// IgnoreMissing skips answers whose field is not in the document instead of aborting.
	IgnoreMissing bool
	// Prober, when set, checks the builder endpoint once its port was written.
	Prober probe.Prober
	// OnPatch is called after every saved patch with the document before and after it.
	OnPatch func(result patch.Result, before, after string)
}

// PromptSequenceService asks the questions in order. A question is only asked once
// the answer to the previous one has been written to disk.
type PromptSequenceService struct {
	reader           lineReader.Reader
	configRepository config.Repository
	completer        lineReader.Completer
	questions        []Question
	out              io.Writer
	logger           *slog.Logger
	options          Options

	state   State
	answers map[State]string
}

func NewPromptSequenceService(
	reader lineReader.Reader,
	configRepository config.Repository,
	completer lineReader.Completer,
	questions []Question,
	out io.Writer,
	logger *slog.Logger,
	options Options,
) *PromptSequenceService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PromptSequenceService{
		reader:           reader,
		configRepository: configRepository,
		completer:        completer,
		questions:        questions,
		out:              out,
		logger:           logger,
		options:          options,
		state:            StateJobDirectory,
		answers:          make(map[State]string),
	}
}

func (s *PromptSequenceService) State() State {
	return s.state
}

// Answer returns what was written for the question of state.
func (s *PromptSequenceService) Answer(state State) (string, bool) {
	answer, ok := s.answers[state]
	return answer, ok
}

// Run ends in StateDone or StateAborted. Patches applied before an abort stay on disk.
func (s *PromptSequenceService) Run(ctx context.Context) error {
	if err := s.configRepository.Load(); err != nil {
		s.state = StateAborted
		return err
	}

	for _, q := range s.questions {
		s.state = q.State
		if err := s.step(ctx, q); err != nil {
			s.logger.Debug("Sequence aborted", slog.String("state", q.State.String()), slog.String("error", err.Error()))
			s.state = StateAborted
			return err
		}
	}

	s.state = StateDone
	return nil
}

func (s *PromptSequenceService) step(ctx context.Context, q Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var complete lineReader.Completer
	if q.Complete {
		complete = s.completer
	}

	answer, err := s.reader.ReadLine(ctx, q.Prompt, complete)
	if err != nil {
		return eris.Wrapf(err, "failed to read %s", q.State)
	}

	if q.Normalize != nil {
		answer = q.Normalize(answer)
	}

	if q.Validate != nil {
		if err := q.Validate(answer); err != nil {
			fmt.Fprintln(s.out, err.Error())
			return err
		}
	}

	before := s.configRepository.Document()
	result, err := s.configRepository.PatchField(q.Rule, answer)
	if err != nil {
		if s.options.IgnoreMissing && eris.Is(err, patch.ErrFieldNotFound) {
			s.logger.Warn("Field not found, answer not written", slog.String("field", q.Rule.Name))
			return nil
		}
		return err
	}

	if err := s.configRepository.Save(); err != nil {
		return err
	}
	s.answers[q.State] = answer

	if s.options.OnPatch != nil {
		s.options.OnPatch(result, before, s.configRepository.Document())
	}

	if q.State == StateBuilderPort && s.options.Prober != nil {
		host := s.answers[StateBuilderHost]
		if err := s.options.Prober.Probe(ctx, host, answer); err != nil {
			s.logger.Warn("Builder endpoint not reachable", slog.String("error", err.Error()))
			fmt.Fprintf(s.out, "warning: %s\n", err.Error())
		}
	}

	return nil
}
