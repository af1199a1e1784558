package feemanager

import (
	"sync"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
)

const DefaultMinPriceIncreaseBps = 1000

type Config struct {
	Owner                 domain.Address
	FeeVerifier           domain.Address
	ListingPrice          domain.Amount
	ListingPriceSecondary domain.Amount
	MinPriceIncreaseBps   int64
}

type impl struct {
	owner                 domain.Address
	feeVerifier           domain.Address
	listingPrice          domain.Amount
	listingPriceSecondary domain.Amount

	// mutex protected members
	mutex               sync.RWMutex
	minPriceIncreaseBps int64
}

func New(cfg *Config) domain.FeeManager {
	bps := cfg.MinPriceIncreaseBps
	if bps <= 0 {
		bps = DefaultMinPriceIncreaseBps
	}
	listingPrice := cfg.ListingPrice
	if listingPrice == "" {
		listingPrice = domain.ZeroAmount
	}
	listingPriceSecondary := cfg.ListingPriceSecondary
	if listingPriceSecondary == "" {
		listingPriceSecondary = domain.ZeroAmount
	}
	return &impl{
		owner:                 cfg.Owner.ToLower(),
		feeVerifier:           cfg.FeeVerifier.ToLower(),
		listingPrice:          listingPrice,
		listingPriceSecondary: listingPriceSecondary,
		minPriceIncreaseBps:   bps,
	}
}

func (im *impl) ListingPrice(c ctx.Ctx) (domain.Amount, error) {
	return im.listingPrice, nil
}

func (im *impl) ListingPriceSecondary(c ctx.Ctx) (domain.Amount, error) {
	return im.listingPriceSecondary, nil
}

func (im *impl) MinPriceIncreaseBps(c ctx.Ctx) (int64, error) {
	im.mutex.RLock()
	defer im.mutex.RUnlock()
	return im.minPriceIncreaseBps, nil
}

func (im *impl) SetMinPriceIncreaseBps(c ctx.Ctx, caller domain.Address, bps int64) error {
	if !caller.Equals(im.owner) {
		return domain.ErrUnauthorized
	}
	if bps < 0 || bps > 10000 {
		return domain.ErrBadParamInput
	}
	im.mutex.Lock()
	defer im.mutex.Unlock()
	im.minPriceIncreaseBps = bps
	return nil
}

func (im *impl) FeeVerifier(c ctx.Ctx) (domain.Address, error) {
	return im.feeVerifier, nil
}

func (im *impl) Owner(c ctx.Ctx) (domain.Address, error) {
	return im.owner, nil
}
