package experiment

type Config struct {
	// Experiments to run, in order
	Experiments []Name `envconfig:"KNNCV_EXPERIMENTS" default:"FOLDS,NORMALIZERS"`
	// Optional TOML file overriding the default plan
	PlanFile string `envconfig:"KNNCV_PLAN_FILE"`
}

func (c *Config) ExperimentConfig() *Config {
	return c
}
