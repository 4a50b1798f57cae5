package normalize

import "github.com/go-sod/knncv/internal/geom"

var _ Normalizer = (*Identity)(nil)

// Identity leaves coordinates as they are.
type Identity struct{}

func NewIdentity() *Identity {
	return &Identity{}
}

func (Identity) Name() string {
	return "DummyNormalizer"
}

func (Identity) Fit([]geom.Point) error {
	return nil
}

// Transform returns points itself.
func (Identity) Transform(points []geom.Point) ([]geom.Point, error) {
	return points, nil
}
