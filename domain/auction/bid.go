package auction

import (
	"time"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
)

type BidStatus string

const (
	BidStatusActive    BidStatus = "active"
	BidStatusCancelled BidStatus = "cancelled"
	BidStatusAccepted  BidStatus = "accepted"
)

// Bid is one bid attempt against a listing. Token amounts are derived from the
// oracle rate in force at bid time and frozen until the bid is edited. Fiat
// bids bypass the oracle and keep every token leg at zero.
type Bid struct {
	BidId     int64          `json:"bidId" bson:"bidId"`
	AuctionId int64          `json:"auctionId" bson:"auctionId"`
	TokenId   domain.TokenId `json:"tokenId" bson:"tokenId"`
	Bidder    domain.Address `json:"bidder" bson:"bidder"`
	Payment   PaymentMethod  `json:"payment" bson:"payment"`
	Fiat      bool           `json:"fiat" bson:"fiat"`

	BidPriceUsd domain.Amount `json:"bidPriceUsd" bson:"bidPriceUsd"`
	// BidPriceUsd at the oracle rate, no markup
	BidPriceToken domain.Amount `json:"bidPriceToken" bson:"bidPriceToken"`
	// BidPriceToken plus the 2% markup, the amount actually escrowed
	BidPriceWithFeeToken domain.Amount `json:"bidPriceWithFeeToken" bson:"bidPriceWithFeeToken"`
	// listing reserve converted at the same rate, frozen for settlement
	ReservePriceToken domain.Amount `json:"reservePriceToken" bson:"reservePriceToken"`
	OracleRoundId     domain.Amount `json:"oracleRoundId" bson:"oracleRoundId"`

	Status    BidStatus `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (b *Bid) IsActive() bool {
	return b.Status == BidStatusActive
}

type BidPatchable struct {
	BidPriceUsd          *domain.Amount `bson:"bidPriceUsd,omitempty"`
	BidPriceToken        *domain.Amount `bson:"bidPriceToken,omitempty"`
	BidPriceWithFeeToken *domain.Amount `bson:"bidPriceWithFeeToken,omitempty"`
	ReservePriceToken    *domain.Amount `bson:"reservePriceToken,omitempty"`
	OracleRoundId        *domain.Amount `bson:"oracleRoundId,omitempty"`
	Status               *BidStatus     `bson:"status,omitempty"`
	UpdatedAt            *time.Time     `bson:"updatedAt,omitempty"`
}

type BidRepo interface {
	FindOne(c ctx.Ctx, bidId int64) (*Bid, error)
	FindByAuction(c ctx.Ctx, auctionId int64) ([]*Bid, error)
	Create(c ctx.Ctx, bid *Bid) error
	Update(c ctx.Ctx, bidId int64, patchable *BidPatchable) error
	NextId(c ctx.Ctx) (int64, error)
}
