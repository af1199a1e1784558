package usecase

import (
	"github.com/holiman/uint256"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/base/pricenormalizer"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/service/treasury"
)

// conversion is one oracle-rate snapshot of a bid's token legs
type conversion struct {
	bidPriceToken        *uint256.Int
	bidPriceWithFeeToken *uint256.Int
	reservePriceToken    *uint256.Int
	roundId              domain.Amount
}

// convertAtOracle derives every token leg of a bid from a fresh oracle quote.
// The stored bidPriceToken is the escrow with the markup stripped again, which
// truncates one unit below the plain rate.
func (im *impl) convertAtOracle(c ctx.Ctx, item *auction.AuctionItem, payment auction.PaymentMethod, usd *uint256.Int) (*conversion, error) {
	quote, supported, err := im.oracle.GetPrice(c, item.ChainId, payment.TokenAddress())
	if err != nil {
		return nil, err
	}
	if !supported {
		return nil, domain.ErrUnsupportedPaymentToken
	}
	price, err := quote.Price.ToUint256()
	if err != nil {
		return nil, err
	}

	withFee, err := pricenormalizer.ToTokenAmountWithFee(usd, price, quote.Decimals, quote.TokenDecimals)
	if err != nil {
		return nil, err
	}
	reserveUsd, err := item.ReservePriceUsd.ToUint256()
	if err != nil {
		reserveUsd = uint256.NewInt(0)
	}
	reserveToken, err := pricenormalizer.ToTokenAmount(reserveUsd, price, quote.Decimals, quote.TokenDecimals)
	if err != nil {
		return nil, err
	}

	return &conversion{
		bidPriceToken:        pricenormalizer.FromFeeAmount(withFee),
		bidPriceWithFeeToken: withFee,
		reservePriceToken:    reserveToken,
		roundId:              quote.RoundId,
	}, nil
}

func (im *impl) checkBiddable(c ctx.Ctx, item *auction.AuctionItem, bidder domain.Address) error {
	if item.IsTerminal() {
		return domain.ErrInvalidState
	}
	if !item.IsOpenAt(im.now()) {
		return domain.ErrInvalidTiming
	}
	if bidder.Equals(item.Seller) {
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) BidToken(c ctx.Ctx, p *auction.PlaceBidPayload) (*auction.Bid, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	item, err := im.auctionRepo.FindOne(c, p.AuctionId)
	if err != nil {
		return nil, err
	}
	if err := im.checkBiddable(c, item, p.Caller); err != nil {
		return nil, err
	}
	if !p.Payment.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	usd, err := p.BidPriceUsd.ToUint256()
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if err := im.checkBidPrice(c, item, usd); err != nil {
		return nil, err
	}

	conv, err := im.convertAtOracle(c, item, p.Payment, usd)
	if err != nil {
		return nil, err
	}
	required := conv.bidPriceWithFeeToken

	// native bids declare an offered value which must cover the escrow, the
	// excess is simply never pulled; fungible bids move exactly the escrow
	if p.Payment.IsNative() {
		offered := uint256.NewInt(0)
		if p.Value != "" {
			if offered, err = p.Value.ToUint256(); err != nil {
				return nil, domain.ErrBadParamInput
			}
		}
		if offered.Lt(required) {
			return nil, domain.ErrInsufficientPayment
		}
	}
	balance, err := im.treasury.Balance(c, item.ChainId, p.Caller, p.Payment.TokenAddress())
	if err != nil {
		return nil, err
	}
	if balanceValue, err := balance.ToUint256(); err != nil {
		return nil, err
	} else if balanceValue.Lt(required) {
		return nil, domain.ErrInsufficientPayment
	}

	bidId, err := im.bidRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	bid := &auction.Bid{
		BidId:                bidId,
		AuctionId:            item.AuctionId,
		TokenId:              item.TokenId,
		Bidder:               p.Caller.ToLower(),
		Payment:              p.Payment,
		BidPriceUsd:          p.BidPriceUsd,
		BidPriceToken:        domain.AmountFromUint256(conv.bidPriceToken),
		BidPriceWithFeeToken: domain.AmountFromUint256(conv.bidPriceWithFeeToken),
		ReservePriceToken:    domain.AmountFromUint256(conv.reservePriceToken),
		OracleRoundId:        conv.roundId,
		Status:               auction.BidStatusActive,
		CreatedAt:            im.now(),
		UpdatedAt:            im.now(),
	}
	if err := im.bidRepo.Create(c, bid); err != nil {
		return nil, err
	}
	if err := im.recordNewBid(c, item, bidId); err != nil {
		return nil, err
	}

	if err := im.treasury.Transfer(c, item.ChainId, p.Caller, treasury.EscrowAccount, p.Payment.TokenAddress(), bid.BidPriceWithFeeToken); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"auctionId": item.AuctionId,
		"bidId":     bidId,
		"bidder":    p.Caller,
	}).Info("bid placed")
	return bid, nil
}

// recordNewBid appends the bid and promotes it to highest, it already passed
// the raise rule.
func (im *impl) recordNewBid(c ctx.Ctx, item *auction.AuctionItem, bidId int64) error {
	listBidIds := append(append([]int64{}, item.ListBidIds...), bidId)
	updatedAt := im.now()
	return im.auctionRepo.Update(c, item.AuctionId, &auction.AuctionPatchable{
		HighestBidId: &bidId,
		ListBidIds:   &listBidIds,
		UpdatedAt:    &updatedAt,
	})
}

func (im *impl) EditBid(c ctx.Ctx, p *auction.EditBidPayload) (*auction.Bid, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	bid, err := im.bidRepo.FindOne(c, p.BidId)
	if err != nil {
		return nil, err
	}
	if bid.Fiat {
		return nil, domain.ErrInvalidState
	}
	if !p.Caller.Equals(bid.Bidder) {
		return nil, domain.ErrUnauthorized
	}
	if !bid.IsActive() {
		return nil, domain.ErrInvalidState
	}
	item, err := im.auctionRepo.FindOne(c, bid.AuctionId)
	if err != nil {
		return nil, err
	}
	if item.IsTerminal() {
		return nil, domain.ErrInvalidState
	}
	if !item.IsOpenAt(im.now()) {
		return nil, domain.ErrInvalidTiming
	}
	usd, err := p.BidPriceUsd.ToUint256()
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if err := im.checkBidPrice(c, item, usd); err != nil {
		return nil, err
	}

	// the oracle may have moved since the original bid, the escrow delta is
	// computed from a fresh conversion
	conv, err := im.convertAtOracle(c, item, bid.Payment, usd)
	if err != nil {
		return nil, err
	}
	oldEscrow, err := bid.BidPriceWithFeeToken.ToUint256()
	if err != nil {
		return nil, err
	}
	newEscrow := conv.bidPriceWithFeeToken

	if newEscrow.Gt(oldEscrow) {
		delta := new(uint256.Int).Sub(newEscrow, oldEscrow)
		balance, err := im.treasury.Balance(c, item.ChainId, p.Caller, bid.Payment.TokenAddress())
		if err != nil {
			return nil, err
		}
		if balanceValue, err := balance.ToUint256(); err != nil {
			return nil, err
		} else if balanceValue.Lt(delta) {
			return nil, domain.ErrInsufficientPayment
		}
	}

	if err := im.applyBidPrices(c, bid, p.BidPriceUsd, conv); err != nil {
		return nil, err
	}
	highestBidId := bid.BidId
	updatedAt := im.now()
	if err := im.auctionRepo.Update(c, item.AuctionId, &auction.AuctionPatchable{
		HighestBidId: &highestBidId,
		UpdatedAt:    &updatedAt,
	}); err != nil {
		return nil, err
	}

	token := bid.Payment.TokenAddress()
	if newEscrow.Gt(oldEscrow) {
		delta := new(uint256.Int).Sub(newEscrow, oldEscrow)
		if err := im.treasury.Transfer(c, item.ChainId, p.Caller, treasury.EscrowAccount, token, domain.AmountFromUint256(delta)); err != nil {
			return nil, err
		}
	} else if oldEscrow.Gt(newEscrow) {
		delta := new(uint256.Int).Sub(oldEscrow, newEscrow)
		if err := im.treasury.Transfer(c, item.ChainId, treasury.EscrowAccount, p.Caller, token, domain.AmountFromUint256(delta)); err != nil {
			return nil, err
		}
	}

	c.WithFields(log.Fields{
		"auctionId": item.AuctionId,
		"bidId":     bid.BidId,
	}).Info("bid edited")
	return im.bidRepo.FindOne(c, bid.BidId)
}

func (im *impl) applyBidPrices(c ctx.Ctx, bid *auction.Bid, usd domain.Amount, conv *conversion) error {
	bidPriceToken := domain.AmountFromUint256(conv.bidPriceToken)
	withFee := domain.AmountFromUint256(conv.bidPriceWithFeeToken)
	reserveToken := domain.AmountFromUint256(conv.reservePriceToken)
	roundId := conv.roundId
	updatedAt := im.now()
	return im.bidRepo.Update(c, bid.BidId, &auction.BidPatchable{
		BidPriceUsd:          &usd,
		BidPriceToken:        &bidPriceToken,
		BidPriceWithFeeToken: &withFee,
		ReservePriceToken:    &reserveToken,
		OracleRoundId:        &roundId,
		UpdatedAt:            &updatedAt,
	})
}

func (im *impl) CancelBid(c ctx.Ctx, caller domain.Address, bidId int64) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	bid, err := im.bidRepo.FindOne(c, bidId)
	if err != nil {
		return err
	}
	if bid.Fiat {
		return domain.ErrInvalidState
	}
	if !caller.Equals(bid.Bidder) {
		return domain.ErrUnauthorized
	}
	if !bid.IsActive() {
		return domain.ErrInvalidState
	}
	item, err := im.auctionRepo.FindOne(c, bid.AuctionId)
	if err != nil {
		return err
	}
	if err := im.checkHighestCancellable(c, item, bidId); err != nil {
		return err
	}

	cancelled := auction.BidStatusCancelled
	updatedAt := im.now()
	if err := im.bidRepo.Update(c, bidId, &auction.BidPatchable{
		Status:    &cancelled,
		UpdatedAt: &updatedAt,
	}); err != nil {
		return err
	}

	if err := im.treasury.Transfer(c, item.ChainId, treasury.EscrowAccount, bid.Bidder, bid.Payment.TokenAddress(), bid.BidPriceWithFeeToken); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"auctionId": bid.AuctionId,
		"bidId":     bidId,
	}).Info("bid cancelled")
	return nil
}

// checkHighestCancellable protects the winning price: the standing highest bid
// may only be withdrawn once the asset already left escrow by other means.
func (im *impl) checkHighestCancellable(c ctx.Ctx, item *auction.AuctionItem, bidId int64) error {
	if item.HighestBidId != bidId {
		return nil
	}
	if item.Sold {
		return domain.ErrInvalidState
	}
	if item.Cancelled {
		return nil
	}
	owner, err := im.nft.OwnerOf(c, item.ToNftId())
	if err != nil {
		return err
	}
	if owner.Equals(treasury.EscrowAccount) {
		return domain.ErrInvalidState
	}
	return nil
}
