package mapping

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aquanum/layermesh/config"
	"github.com/aquanum/layermesh/element"
	"github.com/aquanum/layermesh/geometry"
)

// ErrMappingNotFound reports that the resolver exhausted its retry budget
// without a stable inversion. This is an expected outcome for points on or
// near cell boundaries; callers decide whether to skip, log, or escalate.
var ErrMappingNotFound = fmt.Errorf("reference-cell mapping not found")

// Resolver localizes physical points in reference-cell coordinates,
// retrying with small randomized perturbations when the direct inversion
// fails. Points exactly on a cell edge or vertex make the Newton inversion
// straddle the boundary; a nudge well below mesh resolution breaks the
// degeneracy without moving the answer beyond numerical noise.
//
// A Resolver owns its random stream and is not safe for concurrent use;
// give each worker goroutine its own Resolver.
type Resolver struct {
	mapping    CellMapping
	maxRetries int
	perturb    distuv.Uniform
	log        *zap.Logger
}

// NewResolver builds a Resolver over the given forward mapping. A nil src
// gets a time-seeded stream; pass a fixed-seed source for reproducible retry
// sequences. A nil log disables logging.
func NewResolver(m CellMapping, p config.Params, src rand.Source, log *zap.Logger) (*Resolver, error) {
	if m == nil {
		return nil, fmt.Errorf("nil cell mapping")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		mapping:    m,
		maxRetries: p.MaxRetries,
		perturb: distuv.Uniform{
			Min: -p.PerturbRadius,
			Max: p.PerturbRadius,
			Src: src,
		},
		log: log,
	}, nil
}

// Resolve returns the reference-cell coordinates of the physical point p
// within cell c. On numerical failure of the direct inversion it retries
// with fresh independent perturbations of each coordinate of the original
// point, up to the retry budget, then reports ErrMappingNotFound.
func (r *Resolver) Resolve(c element.Cell, p geometry.Point) (geometry.Point, error) {
	unit, err := r.mapping.RealToUnit(c, p)
	if err == nil {
		return unit, nil
	}

	try := p.Clone()
	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		for d := range try {
			try[d] = p[d] + r.perturb.Rand()
		}
		unit, err = r.mapping.RealToUnit(c, try)
		if err == nil {
			r.log.Debug("localized point after perturbation",
				zap.Int("attempt", attempt+1),
				zap.Float64s("point", p))
			return unit, nil
		}
	}

	r.log.Debug("localization failed",
		zap.Int("attempts", r.maxRetries+1),
		zap.Float64s("point", p),
		zap.Error(err))
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrMappingNotFound, r.maxRetries+1, err)
}
