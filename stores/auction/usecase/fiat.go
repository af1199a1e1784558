package usecase

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/ethereum"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
)

var (
	uint256Type = mustNewAbiType("uint256")
	addressType = mustNewAbiType("address")
)

func mustNewAbiType(t string) ethabi.Type {
	typ, err := ethabi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// fiatBidHash is keccak256(abi.encode(chainId, bidder, marketplace,
// auctionId, tokenId, nft, priceUsd)), the message the fee verifier signs to
// authorize an off-chain-settled bid.
func (im *impl) fiatBidHash(item *auction.AuctionItem, bidder domain.Address, priceUsd *big.Int) ([]byte, error) {
	return im.packAndHash(item, bidder, nil, priceUsd)
}

// fiatEditHash additionally binds the bid id right after the marketplace.
func (im *impl) fiatEditHash(item *auction.AuctionItem, bidder domain.Address, bidId int64, priceUsd *big.Int) ([]byte, error) {
	id := big.NewInt(bidId)
	return im.packAndHash(item, bidder, id, priceUsd)
}

// fiatCancelHash is the edit hash without the price.
func (im *impl) fiatCancelHash(item *auction.AuctionItem, bidder domain.Address, bidId int64) ([]byte, error) {
	id := big.NewInt(bidId)
	return im.packAndHash(item, bidder, id, nil)
}

func (im *impl) packAndHash(item *auction.AuctionItem, bidder domain.Address, bidId, priceUsd *big.Int) ([]byte, error) {
	tokenId, ok := new(big.Int).SetString(item.TokenId.String(), 10)
	if !ok {
		return nil, domain.ErrBadParamInput
	}

	args := ethabi.Arguments{
		{Type: uint256Type},
		{Type: addressType},
		{Type: addressType},
	}
	values := []interface{}{
		big.NewInt(int64(item.ChainId)),
		common.HexToAddress(bidder.ToLowerStr()),
		common.HexToAddress(im.marketplace.ToLowerStr()),
	}
	if bidId != nil {
		args = append(args, ethabi.Argument{Type: uint256Type})
		values = append(values, bidId)
	}
	args = append(args,
		ethabi.Argument{Type: uint256Type},
		ethabi.Argument{Type: uint256Type},
		ethabi.Argument{Type: addressType},
	)
	values = append(values,
		big.NewInt(item.AuctionId),
		tokenId,
		common.HexToAddress(item.Contract.ToLowerStr()),
	)
	if priceUsd != nil {
		args = append(args, ethabi.Argument{Type: uint256Type})
		values = append(values, priceUsd)
	}

	packed, err := args.Pack(values...)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(packed), nil
}

// verifyFiatSignature recovers a personal-sign signature over hash and
// compares it to the configured fee verifier.
func (im *impl) verifyFiatSignature(c ctx.Ctx, hash []byte, signature string) error {
	if _, err := hexutil.Decode(signature); err != nil {
		return domain.ErrInvalidSignature
	}
	verifier, err := im.feeManager.FeeVerifier(c)
	if err != nil {
		return err
	}
	valid, err := ethereum.ValidateMsgSignature(hash, signature, string(verifier))
	if err != nil {
		c.WithField("err", err).Warn("signature recovery failed")
		return domain.ErrInvalidSignature
	}
	if !valid {
		return domain.ErrInvalidSignature
	}
	return nil
}

func (im *impl) BidTokenFiat(c ctx.Ctx, p *auction.FiatBidPayload) (*auction.Bid, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	item, err := im.auctionRepo.FindOne(c, p.AuctionId)
	if err != nil {
		return nil, err
	}
	if err := im.checkBiddable(c, item, p.Caller); err != nil {
		return nil, err
	}
	usd, err := p.BidPriceUsd.ToUint256()
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if err := im.checkBidPrice(c, item, usd); err != nil {
		return nil, err
	}

	hash, err := im.fiatBidHash(item, p.Caller, usd.ToBig())
	if err != nil {
		return nil, err
	}
	if err := im.verifyFiatSignature(c, hash, p.Signature); err != nil {
		return nil, err
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
		Payment:              auction.NativePayment(),
		Fiat:                 true,
		BidPriceUsd:          p.BidPriceUsd,
		BidPriceToken:        domain.ZeroAmount,
		BidPriceWithFeeToken: domain.ZeroAmount,
		ReservePriceToken:    domain.ZeroAmount,
		OracleRoundId:        domain.ZeroAmount,
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

	c.WithFields(log.Fields{
		"auctionId": item.AuctionId,
		"bidId":     bidId,
		"bidder":    p.Caller,
	}).Info("fiat bid placed")
	return bid, nil
}

func (im *impl) EditBidFiat(c ctx.Ctx, p *auction.FiatEditPayload) (*auction.Bid, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	bid, err := im.bidRepo.FindOne(c, p.BidId)
	if err != nil {
		return nil, err
	}
	if !bid.Fiat {
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

	hash, err := im.fiatEditHash(item, p.Caller, bid.BidId, usd.ToBig())
	if err != nil {
		return nil, err
	}
	if err := im.verifyFiatSignature(c, hash, p.Signature); err != nil {
		return nil, err
	}

	// fiat bids never touch the oracle, only the usd price moves
	updatedAt := im.now()
	if err := im.bidRepo.Update(c, bid.BidId, &auction.BidPatchable{
		BidPriceUsd: &p.BidPriceUsd,
		UpdatedAt:   &updatedAt,
	}); err != nil {
		return nil, err
	}
	highestBidId := bid.BidId
	if err := im.auctionRepo.Update(c, item.AuctionId, &auction.AuctionPatchable{
		HighestBidId: &highestBidId,
		UpdatedAt:    &updatedAt,
	}); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"auctionId": item.AuctionId,
		"bidId":     bid.BidId,
	}).Info("fiat bid edited")
	return im.bidRepo.FindOne(c, bid.BidId)
}

func (im *impl) CancelBidFiat(c ctx.Ctx, p *auction.FiatCancelPayload) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	bid, err := im.bidRepo.FindOne(c, p.BidId)
	if err != nil {
		return err
	}
	if !bid.Fiat {
		return domain.ErrInvalidState
	}
	if !p.Caller.Equals(bid.Bidder) {
		return domain.ErrUnauthorized
	}
	if !bid.IsActive() {
		return domain.ErrInvalidState
	}
	item, err := im.auctionRepo.FindOne(c, bid.AuctionId)
	if err != nil {
		return err
	}
	if err := im.checkHighestCancellable(c, item, bid.BidId); err != nil {
		return err
	}

	hash, err := im.fiatCancelHash(item, p.Caller, bid.BidId)
	if err != nil {
		return err
	}
	if err := im.verifyFiatSignature(c, hash, p.Signature); err != nil {
		return err
	}

	// nothing escrowed on platform for fiat bids, no refund leg
	cancelled := auction.BidStatusCancelled
	updatedAt := im.now()
	if err := im.bidRepo.Update(c, bid.BidId, &auction.BidPatchable{
		Status:    &cancelled,
		UpdatedAt: &updatedAt,
	}); err != nil {
		return err
	}

	c.WithFields(log.Fields{
		"auctionId": bid.AuctionId,
		"bidId":     bid.BidId,
	}).Info("fiat bid cancelled")
	return nil
}
