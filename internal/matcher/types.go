package matcher

import "restaurant-bot/internal/catalog"

// Tier is the candidate strategy that produced a hit.
type Tier int

const (
	TierExactName Tier = iota
	TierTag
	TierAlias
	TierApprox
)

func (t Tier) String() string {
	switch t {
	case TierExactName:
		return "exact-name"
	case TierTag:
		return "tag"
	case TierAlias:
		return "alias"
	case TierApprox:
		return "approx"
	default:
		return "unknown"
	}
}

// Hit is one scored catalog match.
type Hit struct {
	Entry catalog.Entry
	Score float64 // 0-100
	Tier  Tier
}
