package srvenv

import (
	"context"

	"github.com/go-sod/knncv/internal/database"
	"github.com/go-sod/knncv/internal/experiment"
	"github.com/go-sod/knncv/internal/predictor"
	reportDb "github.com/go-sod/knncv/internal/report/database"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

// SrvEnv holds the dependencies built by setup.
type SrvEnv struct {
	database  *database.DB
	reports   *reportDb.DB
	predictor predictor.ProvideFn
	runner    *experiment.Runner
}

func (s *SrvEnv) ProvidePredictor() predictor.ProvideFn {
	return s.predictor
}

func (s *SrvEnv) Runner() *experiment.Runner {
	return s.runner
}

// Reports returns the report store, nil when persistence is disabled.
func (s *SrvEnv) Reports() *reportDb.DB {
	return s.reports
}

func (s *SrvEnv) Database() *database.DB {
	return s.database
}

func WithPredictor(fn predictor.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.predictor = fn
		return s
	}
}

func WithRunner(r *experiment.Runner) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.runner = r
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		s.reports = reportDb.New(db)
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
