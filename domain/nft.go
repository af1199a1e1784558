package domain

import (
	"github.com/danielNg25/dp-marketplace/base/ctx"
)

// NftItem is a custodial record of a minted token. Owner tracks who may list
// or reclaim it, Creator receives royalty legs on resales.
type NftItem struct {
	ChainId        ChainId `bson:"chainId"`
	Contract       Address `bson:"contract"`
	TokenId        TokenId `bson:"tokenId"`
	Owner          Address `bson:"owner"`
	Creator        Address `bson:"creator"`
	RoyaltyPercent int64   `bson:"royaltyPercent"`
	TokenUri       string  `bson:"tokenUri"`
	MintedAt       int64   `bson:"mintedAt"`
	Burned         bool    `bson:"burned"`
}

type NftId struct {
	ChainId  ChainId `bson:"chainId"`
	Contract Address `bson:"contract"`
	TokenId  TokenId `bson:"tokenId"`
}

func (i *NftItem) ToId() *NftId {
	return &NftId{
		ChainId:  i.ChainId,
		Contract: i.Contract,
		TokenId:  i.TokenId,
	}
}

// NftRegistry is the custody collaborator of the auction engine. Listing an
// item parks it under the marketplace account, settlement and reclaim move it
// back out.
type NftRegistry interface {
	// NextTokenId hands out the next sequential token id for a contract
	NextTokenId(c ctx.Ctx, chainId ChainId, contract Address) (TokenId, error)
	Mint(c ctx.Ctx, item *NftItem) error
	FindOne(c ctx.Ctx, id *NftId) (*NftItem, error)
	OwnerOf(c ctx.Ctx, id *NftId) (Address, error)
	CreatorOf(c ctx.Ctx, id *NftId) (Address, error)
	// IsApprovedOrOwner reports whether operator may move the token
	IsApprovedOrOwner(c ctx.Ctx, id *NftId, operator Address) (bool, error)
	Transfer(c ctx.Ctx, id *NftId, from, to Address) error
	// AdministratorTransfer moves the token regardless of ownership, admin only
	AdministratorTransfer(c ctx.Ctx, id *NftId, to Address) error
}
