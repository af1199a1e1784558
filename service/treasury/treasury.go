package treasury

import (
	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
)

// Internal accounts of the marketplace. Escrow holds the sum of every active
// bid's bidPriceWithFeeToken, Revenue accumulates listing fees and settlement
// residuals.
const (
	EscrowAccount  = domain.Address("marketplace:escrow")
	RevenueAccount = domain.Address("marketplace:revenue")
)

// Account is one balance bucket, keyed by (chainId, owner, token). Token is
// domain.EmptyAddress for the native coin.
type Account struct {
	ChainId domain.ChainId `bson:"chainId"`
	Owner   domain.Address `bson:"owner"`
	Token   domain.Address `bson:"token"`
	Balance domain.Amount  `bson:"balance"`
}

// Treasury is the fund-movement collaborator of the auction engine. Transfer
// is all-or-nothing, a short source balance rejects without any change.
// Callers serialize access, the ledger itself does no locking.
type Treasury interface {
	Balance(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address) (domain.Amount, error)
	Deposit(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address, amount domain.Amount) error
	Transfer(c ctx.Ctx, chainId domain.ChainId, from, to, token domain.Address, amount domain.Amount) error
}
