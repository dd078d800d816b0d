package measure

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pavanmanishd/arraylist/internal/config"
)

// Run measures every configured implementation and returns the reports in
// configuration order. Up to cfg.Workers suites run at once; with one worker
// they run one after another.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fs := make([]Factory, len(cfg.Implementations))
	for i, name := range cfg.Implementations {
		f, ok := Lookup(name)
		if !ok {
			return nil, errors.Errorf("unknown implementation %q, known: %v", name, Implementations())
		}
		fs[i] = f
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithPanicHandler(func(p interface{}) {
		logger.Error("suite worker panic", zap.Any("panic", p))
	}))
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	reports := make([]Report, len(fs))
	errs := make([]error, len(fs))
	var wg sync.WaitGroup
	for i := range fs {
		if err := ctx.Err(); err != nil {
			errs[i] = errors.Wrap(err, "not started")
			continue
		}
		name := cfg.Implementations[i]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					errs[i] = errors.Errorf("%s: panic: %v", name, p)
				}
			}()
			logger.Info("measuring", zap.String("implementation", name), zap.Int("elements", cfg.Elements))
			reports[i], errs[i] = newSuite(name, fs[i](), cfg, logger).run(ctx)
		})
		if err != nil {
			wg.Done()
			errs[i] = errors.Wrap(err, "submit suite")
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return reports, errors.Wrapf(err, "measure %s", cfg.Implementations[i])
		}
	}
	return reports, nil
}
