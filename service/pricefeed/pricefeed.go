package pricefeed

import (
	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
)

// Quote is one oracle reading for a payment token. Price carries Decimals
// precision, RoundId increases monotonically per feed.
type Quote struct {
	Price         domain.Amount `json:"price"`
	Decimals      int32         `json:"decimals"`
	TokenDecimals int32         `json:"tokenDecimals"`
	RoundId       domain.Amount `json:"roundId"`
}

// Oracle resolves the USD price of a payment token. The native coin is keyed
// by domain.EmptyAddress. supported is false when no feed is configured for
// the token, which callers must reject before converting.
type Oracle interface {
	GetPrice(c ctx.Ctx, chainId domain.ChainId, token domain.Address) (quote *Quote, supported bool, err error)
}
