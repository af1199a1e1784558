package usecase

import (
	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/service/treasury"
)

// ApproveAndTransfer moves a token out of custody regardless of listings,
// owner only. Pulling a listed unsold item out of escrow voids its open
// listing, which is what unlocks cancellation of the standing highest bid.
func (im *impl) ApproveAndTransfer(c ctx.Ctx, caller domain.Address, id *domain.NftId, to domain.Address) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	owner, err := im.feeManager.Owner(c)
	if err != nil {
		return err
	}
	if !caller.Equals(owner) {
		return domain.ErrUnauthorized
	}
	if to.IsEmpty() {
		return domain.ErrBadParamInput
	}

	open, err := im.auctionRepo.FindAll(c, auction.WithNftId(id.Contract, id.TokenId), auction.WithOpen(true))
	if err != nil {
		return err
	}
	for _, item := range open {
		if err := im.markCancelled(c, item.AuctionId); err != nil {
			return err
		}
	}

	if err := im.nft.AdministratorTransfer(c, id, to); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"tokenId": id.TokenId,
		"to":      to,
	}).Info("administrative transfer")
	return nil
}

// WithdrawFunds pays the accumulated platform revenue for one payment method
// out to the given address. Bid escrow is never touched.
func (im *impl) WithdrawFunds(c ctx.Ctx, caller, to domain.Address, chainId domain.ChainId, payment auction.PaymentMethod) (domain.Amount, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	owner, err := im.feeManager.Owner(c)
	if err != nil {
		return domain.ZeroAmount, err
	}
	if !caller.Equals(owner) {
		return domain.ZeroAmount, domain.ErrUnauthorized
	}
	if to.IsEmpty() {
		return domain.ZeroAmount, domain.ErrBadParamInput
	}

	token := payment.TokenAddress()
	balance, err := im.treasury.Balance(c, chainId, treasury.RevenueAccount, token)
	if err != nil {
		return domain.ZeroAmount, err
	}
	if balance.IsZero() {
		return domain.ZeroAmount, domain.ErrZeroBalance
	}

	if err := im.treasury.Transfer(c, chainId, treasury.RevenueAccount, to, token, balance); err != nil {
		return domain.ZeroAmount, err
	}

	c.WithFields(log.Fields{
		"to":     to,
		"token":  token,
		"amount": balance,
	}).Info("revenue withdrawn")
	return balance, nil
}

func (im *impl) SetMinPriceIncreaseBps(c ctx.Ctx, caller domain.Address, bps int64) error {
	return im.feeManager.SetMinPriceIncreaseBps(c, caller, bps)
}
