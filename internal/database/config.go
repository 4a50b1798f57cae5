package database

import "time"

type Config struct {
	// Report database file, persistence is disabled when empty
	FileName string        `envconfig:"KNNCV_REPORT_DB"`
	Timeout  time.Duration `envconfig:"KNNCV_REPORT_DB_TIMEOUT" default:"1s"`
}

func (c Config) Enabled() bool {
	return c.FileName != ""
}
