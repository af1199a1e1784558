package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/service/treasury"
)

const (
	verifierKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	strangerKeyHex = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
)

func testVerifierAddress(t *testing.T) domain.Address {
	key, err := crypto.HexToECDSA(verifierKeyHex)
	require.NoError(t, err)
	return domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()
}

func signFiat(t *testing.T, keyHex string, hash []byte) string {
	key, err := crypto.HexToECDSA(keyHex)
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash(hash), key)
	require.NoError(t, err)
	return hexutil.Encode(sig)
}

func usdBig(t *testing.T, s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

func TestFiatBidLifecycle(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)

	listed := e.listPrimary(t, "100000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	item, err := e.uc.GetAuction(c, listed.AuctionId)
	req.NoError(err)

	hash, err := e.im.fiatBidHash(item, bidder1, usdBig(t, "110000000000000000"))
	req.NoError(err)
	sig := signFiat(t, verifierKeyHex, hash)

	// malformed signature
	_, err = e.uc.BidTokenFiat(c, &auction.FiatBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		BidPriceUsd: "110000000000000000",
		Signature:   "0xzz",
	})
	req.ErrorIs(err, domain.ErrInvalidSignature)

	// signed by the wrong key
	_, err = e.uc.BidTokenFiat(c, &auction.FiatBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		BidPriceUsd: "110000000000000000",
		Signature:   signFiat(t, strangerKeyHex, hash),
	})
	req.ErrorIs(err, domain.ErrInvalidSignature)

	// the signature binds the bidder
	_, err = e.uc.BidTokenFiat(c, &auction.FiatBidPayload{
		Caller:      bidder2,
		AuctionId:   item.AuctionId,
		BidPriceUsd: "110000000000000000",
		Signature:   sig,
	})
	req.ErrorIs(err, domain.ErrInvalidSignature)

	bid, err := e.uc.BidTokenFiat(c, &auction.FiatBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		BidPriceUsd: "110000000000000000",
		Signature:   sig,
	})
	req.NoError(err)
	req.True(bid.Fiat)
	req.True(bid.Payment.IsNative())
	req.Equal(domain.ZeroAmount, bid.BidPriceToken)
	req.Equal(domain.ZeroAmount, bid.BidPriceWithFeeToken)
	req.Equal(domain.ZeroAmount, bid.ReservePriceToken)
	req.Equal(domain.ZeroAmount, bid.OracleRoundId)

	updated, err := e.uc.GetAuction(c, item.AuctionId)
	req.NoError(err)
	req.Equal(bid.BidId, updated.HighestBidId)

	// the signature binds the price, a raise needs a fresh one
	_, err = e.uc.BidTokenFiat(c, &auction.FiatBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		BidPriceUsd: "121000000000000000",
		Signature:   sig,
	})
	req.ErrorIs(err, domain.ErrInvalidSignature)

	// token-side operations reject fiat bids
	_, err = e.uc.EditBid(c, &auction.EditBidPayload{
		Caller:      bidder1,
		BidId:       bid.BidId,
		BidPriceUsd: "121000000000000000",
	})
	req.ErrorIs(err, domain.ErrInvalidState)
	req.ErrorIs(e.uc.CancelBid(c, bidder1, bid.BidId), domain.ErrInvalidState)

	editHash, err := e.im.fiatEditHash(item, bidder1, bid.BidId, usdBig(t, "121000000000000000"))
	req.NoError(err)
	edited, err := e.uc.EditBidFiat(c, &auction.FiatEditPayload{
		Caller:      bidder1,
		BidId:       bid.BidId,
		BidPriceUsd: "121000000000000000",
		Signature:   signFiat(t, verifierKeyHex, editHash),
	})
	req.NoError(err)
	req.Equal("121000000000000000", edited.BidPriceUsd.String())
	req.Equal(domain.ZeroAmount, edited.BidPriceToken)

	// settlement moves the asset but no funds
	e.now = endTime
	req.NoError(e.uc.AcceptBid(c, adminWallet, item.AuctionId, bid.BidId))
	req.Equal(bidder1, e.nftOwner(t, item.TokenId))
	req.Equal("0", e.balance(t, treasury.EscrowAccount, domain.EmptyAddress))
	req.Equal("0", e.balance(t, treasury.RevenueAccount, domain.EmptyAddress))
	req.Equal("0", e.balance(t, charityWallet, domain.EmptyAddress))

	settled, err := e.uc.GetBid(c, bid.BidId)
	req.NoError(err)
	req.Equal(auction.BidStatusAccepted, settled.Status)
}

func TestFiatCancelBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)

	listed := e.listPrimary(t, "100000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	item, err := e.uc.GetAuction(c, listed.AuctionId)
	req.NoError(err)

	placeFiat := func(bidder domain.Address, usd domain.Amount) *auction.Bid {
		hash, err := e.im.fiatBidHash(item, bidder, usdBig(t, usd.String()))
		req.NoError(err)
		bid, err := e.uc.BidTokenFiat(c, &auction.FiatBidPayload{
			Caller:      bidder,
			AuctionId:   item.AuctionId,
			BidPriceUsd: usd,
			Signature:   signFiat(t, verifierKeyHex, hash),
		})
		req.NoError(err)
		return bid
	}

	first := placeFiat(bidder1, "110000000000000000")
	second := placeFiat(bidder2, "121000000000000000")

	// the standing highest stays locked while the asset is in escrow
	cancelHash, err := e.im.fiatCancelHash(item, bidder2, second.BidId)
	req.NoError(err)
	err = e.uc.CancelBidFiat(c, &auction.FiatCancelPayload{
		Caller:    bidder2,
		BidId:     second.BidId,
		Signature: signFiat(t, verifierKeyHex, cancelHash),
	})
	req.ErrorIs(err, domain.ErrInvalidState)

	cancelHash, err = e.im.fiatCancelHash(item, bidder1, first.BidId)
	req.NoError(err)

	// cancellation needs its own authorization
	err = e.uc.CancelBidFiat(c, &auction.FiatCancelPayload{
		Caller:    bidder1,
		BidId:     first.BidId,
		Signature: signFiat(t, strangerKeyHex, cancelHash),
	})
	req.ErrorIs(err, domain.ErrInvalidSignature)

	req.NoError(e.uc.CancelBidFiat(c, &auction.FiatCancelPayload{
		Caller:    bidder1,
		BidId:     first.BidId,
		Signature: signFiat(t, verifierKeyHex, cancelHash),
	}))
	cancelled, err := e.uc.GetBid(c, first.BidId)
	req.NoError(err)
	req.Equal(auction.BidStatusCancelled, cancelled.Status)
}
