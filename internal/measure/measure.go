// Package measure times list implementations through a fixed series of
// phases: filling with random values, random access, random removal and
// removal while iterating.
package measure

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pavanmanishd/arraylist/internal/config"
)

// Phase names one timed step of a suite.
type Phase string

const (
	PhaseFill             Phase = "fill"
	PhaseRandomAccess     Phase = "random access"
	PhaseRandomRemoval    Phase = "random removal"
	PhaseIterationRemoval Phase = "removal in iteration"
)

// Result is the timing of one phase.
type Result struct {
	Phase      Phase
	Operations int // operations attempted
	Affected   int // elements added, read or removed
	Elapsed    time.Duration
}

// Report collects the results of one implementation.
type Report struct {
	Implementation       string
	Elements             int
	IterationRemovalRate float64
	Results              []Result
	// Len and Checksum describe the surviving elements. Equal seeds give
	// equal values for every implementation.
	Len      int
	Checksum int64
}

// suite runs the phases against one Sequence with its own random source.
type suite struct {
	name   string
	seq    Sequence
	cfg    config.Config
	rng    *rand.Rand
	sink   io.Writer
	logger *zap.Logger
}

func newSuite(name string, seq Sequence, cfg config.Config, logger *zap.Logger) *suite {
	return &suite{
		name:   name,
		seq:    seq,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		sink:   io.Discard,
		logger: logger.With(zap.String("implementation", name)),
	}
}

func (s *suite) run(ctx context.Context) (Report, error) {
	report := Report{
		Implementation:       s.name,
		Elements:             s.cfg.Elements,
		IterationRemovalRate: s.cfg.IterationRemovalRate,
	}
	phases := []struct {
		phase Phase
		fn    func() (int, int)
	}{
		{PhaseFill, s.fill},
		{PhaseRandomAccess, s.randomAccess},
		{PhaseRandomRemoval, s.randomRemoval},
		{PhaseIterationRemoval, s.removeInIteration},
	}
	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrapf(err, "%s: before %s", s.name, p.phase)
		}
		start := time.Now()
		ops, affected := p.fn()
		r := Result{
			Phase:      p.phase,
			Operations: ops,
			Affected:   affected,
			Elapsed:    time.Since(start),
		}
		s.logger.Debug("phase done",
			zap.String("phase", string(r.Phase)),
			zap.Int("operations", r.Operations),
			zap.Int("affected", r.Affected),
			zap.Duration("elapsed", r.Elapsed),
		)
		report.Results = append(report.Results, r)
	}
	report.Len = s.seq.Len()
	for _, v := range s.seq.Values() {
		report.Checksum += int64(v)
	}
	return report, nil
}

func (s *suite) fill() (int, int) {
	n := s.cfg.Elements
	for i := 0; i < n; i++ {
		s.seq.Add(s.rng.Int())
	}
	return n, n
}

func (s *suite) randomAccess() (int, int) {
	m, n := s.cfg.Operations, s.cfg.Elements
	for i := 0; i < m; i++ {
		fmt.Fprint(s.sink, s.seq.Get(s.rng.Intn(n)))
	}
	return m, m
}

func (s *suite) randomRemoval() (int, int) {
	m, n := s.cfg.Operations, s.cfg.Elements
	for i := 0; i < m; i++ {
		s.seq.RemoveAt(s.rng.Intn(n - i))
	}
	return m, m
}

func (s *suite) removeInIteration() (int, int) {
	ops := s.seq.Len()
	rate := s.cfg.IterationRemovalRate
	removed := s.seq.RemoveWhileIterating(func() bool {
		return s.rng.Float64() < rate
	})
	return ops, removed
}
