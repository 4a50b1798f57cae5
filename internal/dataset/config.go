package dataset

type Config struct {
	// Field separator of the input file, a single character
	Delimiter string `envconfig:"KNNCV_DELIMITER" default:","`
}

func (c *Config) DatasetConfig() *Config {
	return c
}
