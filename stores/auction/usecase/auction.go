package usecase

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/service/treasury"
)

func (im *impl) checkWindow(startTime, endTime, now time.Time) error {
	if !startTime.Before(endTime) {
		return domain.ErrInvalidTiming
	}
	if startTime.Before(now) {
		return domain.ErrInvalidTiming
	}
	return nil
}

// checkListingPrices validates start/reserve ordering for a new listing and
// returns the parsed start price.
func checkListingPrices(startPriceUsd, reservePriceUsd domain.Amount) error {
	start, err := startPriceUsd.ToUint256()
	if err != nil {
		return domain.ErrInvalidPrice
	}
	if start.IsZero() {
		return domain.ErrInvalidPrice
	}
	if reservePriceUsd != "" && reservePriceUsd != domain.ZeroAmount {
		reserve, err := reservePriceUsd.ToUint256()
		if err != nil {
			return domain.ErrInvalidPrice
		}
		if start.Lt(reserve) {
			return domain.ErrInvalidPrice
		}
	}
	return nil
}

// chargeListingFee moves the flat native listing fee into the revenue account.
// The declared value must match the fee exactly.
func (im *impl) chargeListingFee(c ctx.Ctx, chainId domain.ChainId, payer domain.Address, value, fee domain.Amount) error {
	feeValue, err := fee.ToUint256()
	if err != nil {
		return err
	}
	declared := uint256.NewInt(0)
	if value != "" {
		if declared, err = value.ToUint256(); err != nil {
			return domain.ErrBadParamInput
		}
	}
	if !declared.Eq(feeValue) {
		return domain.ErrInsufficientPayment
	}
	if feeValue.IsZero() {
		return nil
	}
	return im.treasury.Transfer(c, chainId, payer, treasury.RevenueAccount, domain.EmptyAddress, fee)
}

func (im *impl) CreateToken(c ctx.Ctx, p *auction.CreateTokenPayload) (*auction.AuctionItem, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	owner, err := im.feeManager.Owner(c)
	if err != nil {
		return nil, err
	}
	if !p.Caller.Equals(owner) {
		return nil, domain.ErrUnauthorized
	}
	if err := checkListingPrices(p.StartPriceUsd, p.ReservePriceUsd); err != nil {
		return nil, err
	}
	if err := im.checkWindow(p.StartTime, p.EndTime, im.now()); err != nil {
		return nil, err
	}

	fee, err := im.feeManager.ListingPrice(c)
	if err != nil {
		return nil, err
	}

	tokenId, err := im.nft.NextTokenId(c, p.ChainId, p.Contract)
	if err != nil {
		return nil, err
	}
	if err := im.nft.Mint(c, &domain.NftItem{
		ChainId:        p.ChainId,
		Contract:       p.Contract,
		TokenId:        tokenId,
		Owner:          treasury.EscrowAccount,
		Creator:        p.CreatorWallet,
		RoyaltyPercent: p.RoyaltyPercent,
		TokenUri:       p.TokenUri,
		MintedAt:       im.now().Unix(),
	}); err != nil {
		return nil, err
	}

	auctionId, err := im.auctionRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	reserve := p.ReservePriceUsd
	if reserve == "" {
		reserve = domain.ZeroAmount
	}
	item := &auction.AuctionItem{
		AuctionId:         auctionId,
		ChainId:           p.ChainId,
		Contract:          p.Contract,
		TokenId:           tokenId,
		Seller:            p.Caller,
		CreatorWallet:     p.CreatorWallet,
		RoyaltyPercent:    p.RoyaltyPercent,
		IsCustodianWallet: false,
		WithPhysical:      p.WithPhysical,
		StartPriceUsd:     p.StartPriceUsd,
		ReservePriceUsd:   reserve,
		StartTime:         p.StartTime,
		EndTime:           p.EndTime,
		InitialList:       true,
		ListBidIds:        []int64{},
		CreatedAt:         im.now(),
		UpdatedAt:         im.now(),
	}
	if err := im.auctionRepo.Create(c, item); err != nil {
		return nil, err
	}

	if err := im.chargeListingFee(c, p.ChainId, p.Caller, p.Value, fee); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"auctionId": auctionId,
		"tokenId":   tokenId,
		"caller":    p.Caller,
	}).Info("token created and listed")
	return item, nil
}

func (im *impl) ReAuctionToken(c ctx.Ctx, p *auction.ReAuctionPayload) (*auction.AuctionItem, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := auction.ValidateShares(p.Beneficiaries, p.ShareBps); err != nil {
		return nil, err
	}
	if err := checkListingPrices(p.StartPriceUsd, domain.ZeroAmount); err != nil {
		return nil, err
	}
	if err := im.checkWindow(p.StartTime, p.EndTime, im.now()); err != nil {
		return nil, err
	}

	id := &domain.NftId{ChainId: p.ChainId, Contract: p.Contract.ToLower(), TokenId: p.TokenId}
	nftItem, err := im.nft.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	approved, err := im.nft.IsApprovedOrOwner(c, id, p.Caller)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, domain.ErrUnauthorized
	}

	// a token may only come back to auction after its first sale completed
	sold, err := im.auctionRepo.Count(c, auction.WithNftId(p.Contract, p.TokenId), auction.WithSold(true))
	if err != nil {
		return nil, err
	}
	if sold == 0 {
		return nil, domain.ErrInvalidState
	}
	if err := im.checkNoOpenListing(c, p.Contract, p.TokenId); err != nil {
		return nil, err
	}

	fee, err := im.feeManager.ListingPriceSecondary(c)
	if err != nil {
		return nil, err
	}

	if err := im.nft.Transfer(c, id, p.Caller, treasury.EscrowAccount); err != nil {
		return nil, err
	}

	auctionId, err := im.auctionRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	item := &auction.AuctionItem{
		AuctionId:         auctionId,
		ChainId:           p.ChainId,
		Contract:          p.Contract,
		TokenId:           p.TokenId,
		Seller:            p.Caller,
		CreatorWallet:     nftItem.Creator,
		RoyaltyPercent:    nftItem.RoyaltyPercent,
		IsCustodianWallet: p.IsCustodianWallet,
		StartPriceUsd:     p.StartPriceUsd,
		ReservePriceUsd:   domain.ZeroAmount,
		StartTime:         p.StartTime,
		EndTime:           p.EndTime,
		ListBidIds:        []int64{},
		Beneficiaries:     p.Beneficiaries,
		ShareBps:          p.ShareBps,
		CreatedAt:         im.now(),
		UpdatedAt:         im.now(),
	}
	if err := im.auctionRepo.Create(c, item); err != nil {
		return nil, err
	}

	if err := im.chargeListingFee(c, p.ChainId, p.Caller, p.Value, fee); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"auctionId": auctionId,
		"tokenId":   p.TokenId,
		"caller":    p.Caller,
	}).Info("token re-auctioned")
	return item, nil
}

func (im *impl) CreateExternalMintedItem(c ctx.Ctx, p *auction.ExternalListingPayload) (*auction.AuctionItem, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := auction.ValidateShares(p.Beneficiaries, p.ShareBps); err != nil {
		return nil, err
	}
	if err := checkListingPrices(p.StartPriceUsd, domain.ZeroAmount); err != nil {
		return nil, err
	}
	if err := im.checkWindow(p.StartTime, p.EndTime, im.now()); err != nil {
		return nil, err
	}

	id := &domain.NftId{ChainId: p.ChainId, Contract: p.Contract.ToLower(), TokenId: p.TokenId}
	nftItem, err := im.nft.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	approved, err := im.nft.IsApprovedOrOwner(c, id, p.Caller)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, domain.ErrUnauthorized
	}
	if err := im.checkNoOpenListing(c, p.Contract, p.TokenId); err != nil {
		return nil, err
	}

	fee, err := im.feeManager.ListingPriceSecondary(c)
	if err != nil {
		return nil, err
	}

	if err := im.nft.Transfer(c, id, p.Caller, treasury.EscrowAccount); err != nil {
		return nil, err
	}

	creator := p.CreatorWallet
	if creator.IsEmpty() {
		creator = nftItem.Creator
	}
	auctionId, err := im.auctionRepo.NextId(c)
	if err != nil {
		return nil, err
	}
	item := &auction.AuctionItem{
		AuctionId:       auctionId,
		ChainId:         p.ChainId,
		Contract:        p.Contract,
		TokenId:         p.TokenId,
		Seller:          p.Caller,
		CreatorWallet:   creator,
		RoyaltyPercent:  p.RoyaltyPercent,
		StartPriceUsd:   p.StartPriceUsd,
		ReservePriceUsd: domain.ZeroAmount,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		ListBidIds:      []int64{},
		Beneficiaries:   p.Beneficiaries,
		ShareBps:        p.ShareBps,
		CreatedAt:       im.now(),
		UpdatedAt:       im.now(),
	}
	if err := im.auctionRepo.Create(c, item); err != nil {
		return nil, err
	}

	if err := im.chargeListingFee(c, p.ChainId, p.Caller, p.Value, fee); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"auctionId": auctionId,
		"tokenId":   p.TokenId,
		"caller":    p.Caller,
	}).Info("external item listed")
	return item, nil
}

func (im *impl) checkNoOpenListing(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) error {
	open, err := im.auctionRepo.Count(c, auction.WithNftId(contract, tokenId), auction.WithOpen(true))
	if err != nil {
		return err
	}
	if open > 0 {
		return domain.ErrConflict
	}
	return nil
}

func (im *impl) CancelAuction(c ctx.Ctx, caller domain.Address, auctionId int64) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	item, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if item.IsTerminal() || item.InitialList {
		return domain.ErrInvalidState
	}
	if !caller.Equals(item.Seller) {
		return domain.ErrUnauthorized
	}
	if !im.now().Before(item.StartTime) {
		return domain.ErrInvalidTiming
	}
	if item.HasBids() {
		return domain.ErrInvalidState
	}

	if err := im.markCancelled(c, auctionId); err != nil {
		return err
	}
	if err := im.nft.Transfer(c, item.ToNftId(), treasury.EscrowAccount, item.Seller); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"auctionId": auctionId,
		"caller":    caller,
	}).Info("auction cancelled")
	return nil
}

func (im *impl) ReclaimAuction(c ctx.Ctx, caller domain.Address, auctionId int64) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	item, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if item.IsTerminal() {
		return domain.ErrInvalidState
	}
	if !caller.Equals(item.Seller) {
		return domain.ErrUnauthorized
	}
	if im.now().Before(item.EndTime) {
		return domain.ErrInvalidTiming
	}
	if item.HasBids() {
		return domain.ErrInvalidState
	}

	if err := im.markCancelled(c, auctionId); err != nil {
		return err
	}
	if err := im.nft.Transfer(c, item.ToNftId(), treasury.EscrowAccount, item.Seller); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"auctionId": auctionId,
		"caller":    caller,
	}).Info("auction reclaimed")
	return nil
}

func (im *impl) markCancelled(c ctx.Ctx, auctionId int64) error {
	cancelled := true
	updatedAt := im.now()
	return im.auctionRepo.Update(c, auctionId, &auction.AuctionPatchable{
		Cancelled: &cancelled,
		UpdatedAt: &updatedAt,
	})
}

// AcceptBid settles a finished auction against its highest bid. Any party may
// call it once the window closed. State is written before any fund movement.
func (im *impl) AcceptBid(c ctx.Ctx, caller domain.Address, auctionId, bidId int64) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	item, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return err
	}
	if item.IsTerminal() {
		return domain.ErrInvalidState
	}
	if im.now().Before(item.EndTime) {
		return domain.ErrInvalidTiming
	}
	if !item.HasBids() || item.HighestBidId == 0 {
		return domain.ErrInvalidState
	}
	if bidId != item.HighestBidId {
		return domain.ErrInvalidState
	}
	bid, err := im.bidRepo.FindOne(c, bidId)
	if err != nil {
		return err
	}
	if bid.AuctionId != auctionId || !bid.IsActive() {
		return domain.ErrInvalidState
	}

	var payout *auction.Payout
	if !bid.Fiat {
		bidToken, err := bid.BidPriceToken.ToUint256()
		if err != nil {
			return err
		}
		reserveToken, err := bid.ReservePriceToken.ToUint256()
		if err != nil {
			return err
		}
		if payout, err = auction.ComputePayout(item, bidToken, reserveToken); err != nil {
			return err
		}
	}

	sold := true
	updatedAt := im.now()
	if err := im.auctionRepo.Update(c, auctionId, &auction.AuctionPatchable{
		Sold:      &sold,
		UpdatedAt: &updatedAt,
	}); err != nil {
		return err
	}
	accepted := auction.BidStatusAccepted
	if err := im.bidRepo.Update(c, bidId, &auction.BidPatchable{
		Status:    &accepted,
		UpdatedAt: &updatedAt,
	}); err != nil {
		return err
	}

	if err := im.nft.Transfer(c, item.ToNftId(), treasury.EscrowAccount, bid.Bidder); err != nil {
		return err
	}

	// fiat settlement happened off platform, no token legs to move
	if bid.Fiat {
		c.WithFields(log.Fields{
			"auctionId": auctionId,
			"bidId":     bidId,
		}).Info("fiat bid accepted")
		return nil
	}

	if err := im.payOut(c, item, bid, payout); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"auctionId": auctionId,
		"bidId":     bidId,
	}).Info("bid accepted")
	return nil
}

func (im *impl) payOut(c ctx.Ctx, item *auction.AuctionItem, bid *auction.Bid, payout *auction.Payout) error {
	token := bid.Payment.TokenAddress()
	chainId := item.ChainId

	pay := func(to domain.Address, amount *uint256.Int) error {
		if amount == nil || amount.IsZero() {
			return nil
		}
		return im.treasury.Transfer(c, chainId, treasury.EscrowAccount, to, token, domain.AmountFromUint256(amount))
	}

	if err := pay(im.charityWallet, payout.Charity); err != nil {
		return err
	}
	if err := pay(item.CreatorWallet, payout.Creator); err != nil {
		return err
	}
	if err := pay(item.Seller, payout.Seller); err != nil {
		return err
	}
	for i, cut := range payout.Beneficiaries {
		if err := pay(item.Beneficiaries[i], cut); err != nil {
			return err
		}
	}

	// the platform residual plus any escrow dust over sellPriceWithFee
	escrowed, err := bid.BidPriceWithFeeToken.ToUint256()
	if err != nil {
		return err
	}
	platform := new(uint256.Int).Set(payout.Platform)
	if escrowed.Gt(payout.Total) {
		platform.Add(platform, new(uint256.Int).Sub(escrowed, payout.Total))
	}
	return pay(treasury.RevenueAccount, platform)
}
