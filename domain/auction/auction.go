package auction

import (
	"time"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
)

// AuctionItem is one listing of a token. A token can be listed, sold and
// re-listed, producing a fresh auctionId each time.
type AuctionItem struct {
	AuctionId         int64          `json:"auctionId" bson:"auctionId"`
	ChainId           domain.ChainId `json:"chainId" bson:"chainId"`
	Contract          domain.Address `json:"contract" bson:"contract"`
	TokenId           domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller            domain.Address `json:"seller" bson:"seller"`
	CreatorWallet     domain.Address `json:"creatorWallet" bson:"creatorWallet"`
	RoyaltyPercent    int64          `json:"royaltyPercent" bson:"royaltyPercent"`
	IsCustodianWallet bool           `json:"isCustodianWallet" bson:"isCustodianWallet"`
	WithPhysical      bool           `json:"withPhysical" bson:"withPhysical"`

	// USD prices, 18 decimal fixed point. Reserve only applies to the very
	// first sale and is cleared on re-listing.
	StartPriceUsd   domain.Amount `json:"startPriceUsd" bson:"startPriceUsd"`
	ReservePriceUsd domain.Amount `json:"reservePriceUsd" bson:"reservePriceUsd"`

	// bidding window, half open [StartTime, EndTime)
	StartTime time.Time `json:"startTime" bson:"startTime"`
	EndTime   time.Time `json:"endTime" bson:"endTime"`

	InitialList  bool    `json:"initialList" bson:"initialList"`
	Sold         bool    `json:"sold" bson:"sold"`
	Cancelled    bool    `json:"cancelled" bson:"cancelled"`
	HighestBidId int64   `json:"highestBidId" bson:"highestBidId"`
	ListBidIds   []int64 `json:"listBidIds" bson:"listBidIds"`

	// optional resale revenue sharing, paid out of the seller leg
	Beneficiaries []domain.Address `json:"beneficiaries" bson:"beneficiaries"`
	ShareBps      []int64          `json:"shareBps" bson:"shareBps"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (a *AuctionItem) ToNftId() *domain.NftId {
	return &domain.NftId{
		ChainId:  a.ChainId,
		Contract: a.Contract,
		TokenId:  a.TokenId,
	}
}

func (a *AuctionItem) IsTerminal() bool {
	return a.Sold || a.Cancelled
}

func (a *AuctionItem) IsOpenAt(t time.Time) bool {
	return !t.Before(a.StartTime) && t.Before(a.EndTime)
}

func (a *AuctionItem) HasBids() bool {
	return len(a.ListBidIds) > 0
}

type AuctionPatchable struct {
	Seller          *domain.Address `bson:"seller,omitempty"`
	ReservePriceUsd *domain.Amount  `bson:"reservePriceUsd,omitempty"`
	Sold            *bool           `bson:"sold,omitempty"`
	Cancelled       *bool           `bson:"cancelled,omitempty"`
	HighestBidId    *int64          `bson:"highestBidId,omitempty"`
	ListBidIds      *[]int64        `bson:"listBidIds,omitempty"`
	UpdatedAt       *time.Time      `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	ChainId  *domain.ChainId
	Seller   *domain.Address
	Contract *domain.Address
	TokenId  *domain.TokenId
	Sold     *bool
	Open     *bool
	OpenAt   *time.Time
	SortBy   *string
	SortDir  *domain.SortDir
	Offset   int32
	Limit    int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(optFns ...FindAllOptionsFunc) (FindAllOptions, error) {
	opts := FindAllOptions{}
	for _, optFn := range optFns {
		if err := optFn(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(opts *FindAllOptions) error {
		opts.ChainId = &chainId
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(opts *FindAllOptions) error {
		seller = seller.ToLower()
		opts.Seller = &seller
		return nil
	}
}

func WithNftId(contract domain.Address, tokenId domain.TokenId) FindAllOptionsFunc {
	return func(opts *FindAllOptions) error {
		contract = contract.ToLower()
		opts.Contract = &contract
		opts.TokenId = &tokenId
		return nil
	}
}

func WithSold(sold bool) FindAllOptionsFunc {
	return func(opts *FindAllOptions) error {
		opts.Sold = &sold
		return nil
	}
}

// WithOpen keeps only non-terminal listings
func WithOpen(open bool) FindAllOptionsFunc {
	return func(opts *FindAllOptions) error {
		opts.Open = &open
		return nil
	}
}

func WithOpenAt(t time.Time) FindAllOptionsFunc {
	return func(opts *FindAllOptions) error {
		opts.OpenAt = &t
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(opts *FindAllOptions) error {
		opts.Offset = offset
		opts.Limit = limit
		return nil
	}
}

type Repo interface {
	FindOne(c ctx.Ctx, auctionId int64) (*AuctionItem, error)
	FindAll(c ctx.Ctx, optFns ...FindAllOptionsFunc) ([]*AuctionItem, error)
	Count(c ctx.Ctx, optFns ...FindAllOptionsFunc) (int, error)
	Create(c ctx.Ctx, item *AuctionItem) error
	Update(c ctx.Ctx, auctionId int64, patchable *AuctionPatchable) error
	NextId(c ctx.Ctx) (int64, error)
	CountSold(c ctx.Ctx, chainId domain.ChainId) (int, error)
}
