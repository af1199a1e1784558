package auction

import (
	"time"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
)

// CreateTokenPayload opens the very first listing of a freshly minted item.
// The platform mints into escrow, so there is no seller leg on settlement.
type CreateTokenPayload struct {
	Caller         domain.Address `json:"-"`
	ChainId        domain.ChainId `json:"chainId" validate:"required"`
	Contract       domain.Address `json:"contract" validate:"required"`
	TokenUri       string         `json:"tokenUri" validate:"required"`
	CreatorWallet  domain.Address `json:"creatorWallet" validate:"required"`
	RoyaltyPercent int64          `json:"royaltyPercent" validate:"gte=0,lte=100"`
	WithPhysical   bool           `json:"withPhysical"`

	StartPriceUsd   domain.Amount `json:"startPriceUsd" validate:"required"`
	ReservePriceUsd domain.Amount `json:"reservePriceUsd"`
	StartTime       time.Time     `json:"startTime" validate:"required"`
	EndTime         time.Time     `json:"endTime" validate:"required"`

	// native value sent along to cover the listing fee
	Value domain.Amount `json:"value"`
}

// ReAuctionPayload re-lists a previously sold item out of the holder's wallet.
// Reserve no longer applies and is cleared to zero.
type ReAuctionPayload struct {
	Caller        domain.Address `json:"-"`
	ChainId       domain.ChainId `json:"chainId" validate:"required"`
	Contract      domain.Address `json:"contract" validate:"required"`
	TokenId       domain.TokenId `json:"tokenId" validate:"required"`
	StartPriceUsd domain.Amount  `json:"startPriceUsd" validate:"required"`
	StartTime     time.Time      `json:"startTime" validate:"required"`
	EndTime       time.Time      `json:"endTime" validate:"required"`

	IsCustodianWallet bool `json:"isCustodianWallet"`

	Beneficiaries []domain.Address `json:"beneficiaries"`
	ShareBps      []int64          `json:"shareBps"`

	Value domain.Amount `json:"value"`
}

// ExternalListingPayload lists an item minted outside the platform flow.
type ExternalListingPayload struct {
	Caller         domain.Address `json:"-"`
	ChainId        domain.ChainId `json:"chainId" validate:"required"`
	Contract       domain.Address `json:"contract" validate:"required"`
	TokenId        domain.TokenId `json:"tokenId" validate:"required"`
	CreatorWallet  domain.Address `json:"creatorWallet"`
	RoyaltyPercent int64          `json:"royaltyPercent" validate:"gte=0,lte=100"`
	StartPriceUsd  domain.Amount  `json:"startPriceUsd" validate:"required"`
	StartTime      time.Time      `json:"startTime" validate:"required"`
	EndTime        time.Time      `json:"endTime" validate:"required"`

	Beneficiaries []domain.Address `json:"beneficiaries"`
	ShareBps      []int64          `json:"shareBps"`

	Value domain.Amount `json:"value"`
}

// PlaceBidPayload is an oracle-priced bid. Value is the native amount offered
// and must cover the escrow for native payments, excess is refunded.
type PlaceBidPayload struct {
	Caller      domain.Address `json:"-"`
	AuctionId   int64          `json:"auctionId" validate:"required"`
	Payment     PaymentMethod  `json:"payment"`
	BidPriceUsd domain.Amount  `json:"bidPriceUsd" validate:"required"`
	Value       domain.Amount  `json:"value"`
}

type EditBidPayload struct {
	Caller      domain.Address `json:"-"`
	BidId       int64          `json:"bidId" validate:"required"`
	BidPriceUsd domain.Amount  `json:"bidPriceUsd" validate:"required"`
	Value       domain.Amount  `json:"value"`
}

// FiatBidPayload is an off-chain-settled bid authorized by the fee verifier's
// signature over (chainId, bidder, marketplace, auctionId, tokenId, nft, priceUsd).
type FiatBidPayload struct {
	Caller      domain.Address `json:"-"`
	AuctionId   int64          `json:"auctionId" validate:"required"`
	BidPriceUsd domain.Amount  `json:"bidPriceUsd" validate:"required"`
	Signature   string         `json:"signature" validate:"required"`
}

type FiatEditPayload struct {
	Caller      domain.Address `json:"-"`
	BidId       int64          `json:"bidId" validate:"required"`
	BidPriceUsd domain.Amount  `json:"bidPriceUsd" validate:"required"`
	Signature   string         `json:"signature" validate:"required"`
}

type FiatCancelPayload struct {
	Caller    domain.Address `json:"-"`
	BidId     int64          `json:"bidId" validate:"required"`
	Signature string         `json:"signature" validate:"required"`
}

type UseCase interface {
	CreateToken(c ctx.Ctx, p *CreateTokenPayload) (*AuctionItem, error)
	ReAuctionToken(c ctx.Ctx, p *ReAuctionPayload) (*AuctionItem, error)
	CreateExternalMintedItem(c ctx.Ctx, p *ExternalListingPayload) (*AuctionItem, error)
	CancelAuction(c ctx.Ctx, caller domain.Address, auctionId int64) error
	ReclaimAuction(c ctx.Ctx, caller domain.Address, auctionId int64) error
	AcceptBid(c ctx.Ctx, caller domain.Address, auctionId, bidId int64) error

	BidToken(c ctx.Ctx, p *PlaceBidPayload) (*Bid, error)
	EditBid(c ctx.Ctx, p *EditBidPayload) (*Bid, error)
	CancelBid(c ctx.Ctx, caller domain.Address, bidId int64) error
	BidTokenFiat(c ctx.Ctx, p *FiatBidPayload) (*Bid, error)
	EditBidFiat(c ctx.Ctx, p *FiatEditPayload) (*Bid, error)
	CancelBidFiat(c ctx.Ctx, p *FiatCancelPayload) error

	ApproveAndTransfer(c ctx.Ctx, caller domain.Address, id *domain.NftId, to domain.Address) error
	WithdrawFunds(c ctx.Ctx, caller, to domain.Address, chainId domain.ChainId, payment PaymentMethod) (domain.Amount, error)
	SetMinPriceIncreaseBps(c ctx.Ctx, caller domain.Address, bps int64) error

	GetAuction(c ctx.Ctx, auctionId int64) (*AuctionItem, error)
	GetOpenAuctions(c ctx.Ctx, chainId domain.ChainId, offset, limit int32) ([]*AuctionItem, error)
	GetItemsSold(c ctx.Ctx, chainId domain.ChainId) (int, error)
	GetBid(c ctx.Ctx, bidId int64) (*Bid, error)
	GetBidsOfAuction(c ctx.Ctx, auctionId int64) ([]*Bid, error)
	GetHighestBid(c ctx.Ctx, auctionId int64) (*Bid, error)
	GetUsdTokenPrice(c ctx.Ctx, chainId domain.ChainId, payment PaymentMethod, usd domain.Amount) (domain.Amount, error)
}
