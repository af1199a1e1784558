package domain

import (
	"github.com/danielNg25/dp-marketplace/base/ctx"
)

// FeeManager exposes the tunable fee knobs of the marketplace. All rates are
// basis points except the sale-side fee which follows the fixed 102/100
// schedule baked into the price math.
type FeeManager interface {
	// ListingPrice is the flat fee, in native units, charged for a first
	// listing. ListingPriceSecondary applies to re-listings and external items.
	ListingPrice(c ctx.Ctx) (Amount, error)
	ListingPriceSecondary(c ctx.Ctx) (Amount, error)
	// MinPriceIncreaseBps is the minimum raise over the highest bid, default 1000
	MinPriceIncreaseBps(c ctx.Ctx) (int64, error)
	SetMinPriceIncreaseBps(c ctx.Ctx, caller Address, bps int64) error
	// FeeVerifier is the signer trusted to authorize fiat operations
	FeeVerifier(c ctx.Ctx) (Address, error)
	// Owner is the administrator allowed to tune fees and withdraw revenue
	Owner(c ctx.Ctx) (Address, error)
}
