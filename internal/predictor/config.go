package predictor

type AlgType string

const (
	AlgTypeKNN AlgType = "KNN"
)

type Config struct {
	Type AlgType `envconfig:"KNNCV_PREDICTOR_TYPE" default:"KNN"`
	// Neighbor count of the quick check experiment
	K int `envconfig:"KNNCV_PREDICTOR_K" default:"5"`
}

func (c Config) PredictorType() AlgType {
	return c.Type
}

func (c Config) PredictorConfig() Config {
	return c
}
