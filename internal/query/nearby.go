package query

import (
	"github.com/rotisserie/eris"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// Radius bounds in kilometers for nearby searches. Values outside the range
// are a caller error, never silently clamped.
const (
	MinRadiusKm = 0
	MaxRadiusKm = 100000
)

// DefaultRadiusKm applies when the caller omits a radius.
const DefaultRadiusKm = 5

// BuildNearby produces a plan selecting records whose location lies within
// radiusKm kilometers of origin. The distance is handed to the storage layer
// in meters. A nil origin yields a plan matching nothing: a record without
// coordinates cannot compute "nearby".
func BuildNearby(origin *domain.Coordinates, radiusKm float64, includeClosed bool) (Plan, error) {
	if radiusKm < MinRadiusKm || radiusKm > MaxRadiusKm {
		return Plan{}, eris.Wrapf(domain.ErrInvalidArgument, "nearby: radius %v km out of [%d, %d]", radiusKm, MinRadiusKm, MaxRadiusKm)
	}
	if origin == nil {
		return Plan{MatchNone: true}, nil
	}
	return Plan{
		ExcludeClosed: !includeClosed,
		Near: &NearCondition{
			Center:            *origin,
			MaxDistanceMeters: radiusKm * 1000,
		},
	}, nil
}
