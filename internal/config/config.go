package knncv

import (
	"github.com/go-sod/knncv/internal/database"
	"github.com/go-sod/knncv/internal/dataset"
	"github.com/go-sod/knncv/internal/experiment"
	"github.com/go-sod/knncv/internal/predictor"
	"github.com/go-sod/knncv/internal/setup"
)

var (
	_ setup.PredictorConfigProvider  = (*Config)(nil)
	_ setup.DatabaseConfigProvider   = (*Config)(nil)
	_ setup.DatasetConfigProvider    = (*Config)(nil)
	_ setup.ExperimentConfigProvider = (*Config)(nil)
)

type Config struct {
	Dataset    dataset.Config
	Predictor  predictor.Config
	Experiment experiment.Config
	Database   database.Config
}

func (c *Config) DatasetConfig() *dataset.Config {
	return &c.Dataset
}

func (c *Config) ExperimentConfig() *experiment.Config {
	return &c.Experiment
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) PredictType() predictor.AlgType {
	return c.Predictor.Type
}

func (c *Config) PredictConfig() *predictor.Config {
	return &c.Predictor
}
