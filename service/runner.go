// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tridiag/config"
	"github.com/katalvlaran/tridiag/fixture"
	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/reference"
	"github.com/katalvlaran/tridiag/tridiagonal"
)

// ErrUnknownBackend is returned for a backend name outside numeric.Backends.
var ErrUnknownBackend = errors.New("service: unknown backend")

// Runner loads fixtures, verifies them under the configured backend and
// renders Results. It is safe for concurrent use.
type Runner struct {
	cfg    config.Config
	store  *fixture.Store
	logger *zap.Logger
}

// NewRunner validates cfg and opens the fixture store. A nil logger is
// replaced by zap.NewNop.
func NewRunner(cfg config.Config, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := fixture.NewStore(cfg.FixturesDir)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{cfg: cfg, store: store, logger: logger}, nil
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() config.Config { return r.cfg }

// Store returns the fixture store.
func (r *Runner) Store() *fixture.Store { return r.store }

// Run verifies the fixture named id.
//
// Errors:
//   - fixture.ErrInvalidID / fixture.ErrNotFound from id resolution;
//   - tridiagonal.ErrLoad for malformed fixtures;
//   - tridiagonal.ErrUnsolvable, returned together with a Result that still
//     carries th1/th2;
//   - ctx.Err() when ctx is done before the run starts.
func (r *Runner) Run(ctx context.Context, id string) (Result, error) {
	path, err := r.store.Path(id)
	if err != nil {
		return Result{ID: id, Backend: r.cfg.Backend, Error: err.Error()}, err
	}

	return r.RunFile(ctx, id, path)
}

// RunFile verifies the fixture at path and labels the Result with id.
func (r *Runner) RunFile(ctx context.Context, id, path string) (Result, error) {
	return r.exec(ctx, id, path, true)
}

// Check evaluates th1/th2 for the fixture named id without solving it.
func (r *Runner) Check(ctx context.Context, id string) (Result, error) {
	path, err := r.store.Path(id)
	if err != nil {
		return Result{ID: id, Backend: r.cfg.Backend, Error: err.Error()}, err
	}

	return r.CheckFile(ctx, id, path)
}

// CheckFile is Check for an explicit path.
func (r *Runner) CheckFile(ctx context.Context, id, path string) (Result, error) {
	return r.exec(ctx, id, path, false)
}

// RunBatch verifies every id with at most cfg.Workers runs in flight; an
// empty ids list means every fixture in the store. Per-fixture failures are
// recorded in Result.Error and do not stop the batch. Results keep the order
// of ids. The returned error is non-nil only when listing fails or ctx ends.
func (r *Runner) RunBatch(ctx context.Context, ids []string) ([]Result, error) {
	if len(ids) == 0 {
		var err error
		if ids, err = r.store.List(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.Run(gctx, id)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("service: batch: %w", err)
	}

	return results, nil
}

func (r *Runner) exec(ctx context.Context, id, path string, solve bool) (Result, error) {
	res := Result{ID: id, RunID: uuid.NewString(), Backend: r.cfg.Backend}
	if err := ctx.Err(); err != nil {
		res.Error = err.Error()
		return res, err
	}

	start := time.Now()
	var err error
	switch r.cfg.Backend {
	case numeric.NameFloat64:
		err = run[numeric.Float64](r, &res, path, numeric.Float64Field{}, solve)
	case numeric.NameBigFloat:
		err = run[numeric.BigFloat](r, &res, path, numeric.NewBigFloatField(r.cfg.Precision), solve)
	case numeric.NameDecimal:
		err = run[numeric.Decimal](r, &res, path, numeric.NewDecimalField(r.cfg.Digits), solve)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, r.cfg.Backend)
	}

	fields := []zap.Field{
		zap.String("id", id),
		zap.String("run_id", res.RunID),
		zap.String("backend", res.Backend),
		zap.Bool("th1", res.T1),
		zap.Bool("th2", res.T2),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		res.Error = err.Error()
		r.logger.Warn("verification failed", append(fields, zap.Error(err))...)
		return res, err
	}
	r.logger.Info("verification done", append(fields, zap.String("norm", res.Norm))...)

	return res, nil
}

func run[T numeric.Number[T]](r *Runner, res *Result, path string, f numeric.Field[T], solve bool) error {
	sys, err := tridiagonal.Load(path, f)
	if err != nil {
		return err
	}
	if !solve {
		res.T1, res.T2 = sys.CheckT1(), sys.CheckT2()
		return nil
	}

	rep, err := sys.Verify()
	fill(res, rep)
	if err != nil {
		return err
	}
	if r.cfg.CrossCheck {
		res.CrossCheck = crossCheck(sys, rep)
	}

	return nil
}

func crossCheck[T numeric.Number[T]](sys *tridiagonal.System[T], rep tridiagonal.Report[T]) *CrossCheck {
	a := reference.Assemble(sys)
	cc := &CrossCheck{}
	deviation := func(m reference.Method) (float64, string) {
		ref, err := m.Solve(a)
		if err != nil {
			return 0, err.Error()
		}
		dev, err := reference.MaxDeviation(rep.Solution, ref)
		if err != nil {
			return 0, err.Error()
		}

		return dev, ""
	}
	cc.Dense, cc.DenseError = deviation(reference.Dense)
	cc.Sparse, cc.SparseError = deviation(reference.Sparse)

	return cc
}
