package setup

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-sod/knncv/internal/database"
	"github.com/go-sod/knncv/internal/dataset"
	"github.com/go-sod/knncv/internal/experiment"
	"github.com/go-sod/knncv/internal/logging"
	"github.com/go-sod/knncv/internal/predictor"
	"github.com/go-sod/knncv/internal/predictor/knn"
	"github.com/go-sod/knncv/internal/srvenv"
	"github.com/kelseyhightower/envconfig"
)

type DatasetConfigProvider interface {
	DatasetConfig() *dataset.Config
}

type PredictorConfigProvider interface {
	PredictConfig() *predictor.Config
	PredictType() predictor.AlgType
}

type ExperimentConfigProvider interface {
	ExperimentConfig() *experiment.Config
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	logger.Debugf("configuration: %s", spew.Sdump(config))

	if datasetConfigProvider, ok := config.(DatasetConfigProvider); ok {
		if _, err := dataset.DelimiterRune(datasetConfigProvider.DatasetConfig().Delimiter); err != nil {
			return nil, fmt.Errorf("invalid dataset config: %w", err)
		}
	}

	var (
		db                 *database.DB
		predictorProvideFn predictor.ProvideFn
		predictorK         = 5
	)
	if predictConfigProvider, ok := config.(PredictorConfigProvider); ok {
		logger.Info("Configuring predictor")
		cfg := predictConfigProvider.PredictConfig()
		provideFn, err := ProvidePredictorFor(cfg)
		if err != nil {
			return nil, fmt.Errorf("unable create predictor provide function: %w", err)
		}
		predictorProvideFn = provideFn
		predictorK = cfg.K
		serverEnvOpts = append(serverEnvOpts, srvenv.WithPredictor(predictorProvideFn))
	}

	if experimentConfigProvider, ok := config.(ExperimentConfigProvider); ok {
		logger.Info("Configuring experiments")
		if predictorProvideFn == nil {
			return nil, fmt.Errorf("experiments require a predictor config")
		}
		runner, err := ProvideExperimentFor(experimentConfigProvider, predictorProvideFn, predictorK)
		if err != nil {
			return nil, fmt.Errorf("unable create experiment runner: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithRunner(runner))
	}

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && dbConfigProvider.DatabaseConfig().Enabled() {
		logger.Info("Configuring db")
		dbFromEnv, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to open database: %w", err)
		}
		db = dbFromEnv
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db))
	}

	return srvenv.New(serverEnvOpts...), nil
}

func ProvideExperimentFor(provider ExperimentConfigProvider, providePredictFn predictor.ProvideFn, quickK int) (*experiment.Runner, error) {
	cfg := provider.ExperimentConfig()
	for _, name := range cfg.Experiments {
		if !experiment.Known(name) {
			return nil, fmt.Errorf("unknown experiment: %s", name)
		}
	}
	plan, err := experiment.LoadPlan(cfg.PlanFile)
	if err != nil {
		return nil, fmt.Errorf("unable load experiment plan: %w", err)
	}
	return experiment.New(providePredictFn, plan, experiment.WithQuickK(quickK))
}

func ProvidePredictorFor(cfg *predictor.Config) (predictor.ProvideFn, error) {
	switch cfg.PredictorType() {
	case predictor.AlgTypeKNN:
		if cfg.K < 1 {
			return nil, fmt.Errorf("%w: %d", predictor.ErrInvalidK, cfg.K)
		}
		return knn.Provide, nil
	default:
		return nil, fmt.Errorf("unknown predictor type: %s", cfg.PredictorType())
	}
}
