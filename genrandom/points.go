package genrandom

import (
	"math/rand"

	"github.com/katalvlaran/submodk/pointsmodel"
)

// Points returns n random points uniformly sampled from [0, 1)^dim, seeded
// for reproducibility. Follows builder.WithSeed's RNG-injection discipline:
// a fresh rand.Rand constructed from the explicit seed, never a package-
// level global.
func Points(n, dim int, seed int64) (*pointsmodel.Points, error) {
	if n < 1 || dim < 1 {
		return nil, ErrTooFewPoints
	}

	rng := rand.New(rand.NewSource(seed))

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, dim)
		for d := 0; d < dim; d++ {
			row[d] = rng.Float64()
		}
		rows[i] = row
	}

	p, err := pointsmodel.New(rows)
	if err != nil {
		return nil, err
	}
	if err := p.Finalize(); err != nil {
		return nil, err
	}

	return p, nil
}
