package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/service/feemanager"
	"github.com/danielNg25/dp-marketplace/service/pricefeed"
	"github.com/danielNg25/dp-marketplace/service/treasury"
)

var (
	testChainId = domain.ChainId(1)

	adminWallet   = domain.Address("0x1d4e9c03c8e8f5f38e1d0a511b70de4f1d45f09a")
	charityWallet = domain.Address("0x9a3c5ef1f7b06c1f265ba2a045031dbe9973ee61")
	sellerWallet  = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	creatorWallet = domain.Address("0xa7ca695b37854181f09c1c39a0cdcffc8db7a667")
	bidder1       = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	bidder2       = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	bidder3       = domain.Address("0x54a769173d97432a48371b022709117c090298e3")
	beneficiary1  = domain.Address("0x2e9e733cb0394aace1226e34313f12b0764be65a")
	payoutWallet  = domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")

	marketplaceAddr = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	nftContract     = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	usdToken        = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

var (
	baseTime  = time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC)
	startTime = baseTime.Add(time.Hour)
	endTime   = baseTime.Add(24 * time.Hour)
)

// memAuctionRepo is an in-memory auction.Repo with the same filter semantics
// as the mongo one.
type memAuctionRepo struct {
	items map[int64]*auction.AuctionItem
	seq   int64
}

func newMemAuctionRepo() *memAuctionRepo {
	return &memAuctionRepo{items: map[int64]*auction.AuctionItem{}}
}

func (r *memAuctionRepo) FindOne(c ctx.Ctx, auctionId int64) (*auction.AuctionItem, error) {
	item, ok := r.items[auctionId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (r *memAuctionRepo) matches(item *auction.AuctionItem, opts auction.FindAllOptions) bool {
	if opts.ChainId != nil && item.ChainId != *opts.ChainId {
		return false
	}
	if opts.Seller != nil && !item.Seller.Equals(*opts.Seller) {
		return false
	}
	if opts.Contract != nil && !item.Contract.Equals(*opts.Contract) {
		return false
	}
	if opts.TokenId != nil && item.TokenId != *opts.TokenId {
		return false
	}
	if opts.Sold != nil && item.Sold != *opts.Sold {
		return false
	}
	if opts.Open != nil && *opts.Open && item.IsTerminal() {
		return false
	}
	if opts.OpenAt != nil && !item.IsOpenAt(*opts.OpenAt) {
		return false
	}
	return true
}

func (r *memAuctionRepo) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.AuctionItem, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}
	res := []*auction.AuctionItem{}
	for _, item := range r.items {
		if r.matches(item, opts) {
			res = append(res, item)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].AuctionId > res[j].AuctionId })
	if opts.Offset > 0 {
		if int(opts.Offset) >= len(res) {
			return []*auction.AuctionItem{}, nil
		}
		res = res[opts.Offset:]
	}
	if opts.Limit > 0 && int(opts.Limit) < len(res) {
		res = res[:opts.Limit]
	}
	return res, nil
}

func (r *memAuctionRepo) Count(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) (int, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range r.items {
		if r.matches(item, opts) {
			count++
		}
	}
	return count, nil
}

func (r *memAuctionRepo) Create(c ctx.Ctx, item *auction.AuctionItem) error {
	item.Seller = item.Seller.ToLower()
	item.Contract = item.Contract.ToLower()
	item.CreatorWallet = item.CreatorWallet.ToLower()
	r.items[item.AuctionId] = item
	return nil
}

func (r *memAuctionRepo) Update(c ctx.Ctx, auctionId int64, p *auction.AuctionPatchable) error {
	item, ok := r.items[auctionId]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Seller != nil {
		item.Seller = *p.Seller
	}
	if p.ReservePriceUsd != nil {
		item.ReservePriceUsd = *p.ReservePriceUsd
	}
	if p.Sold != nil {
		item.Sold = *p.Sold
	}
	if p.Cancelled != nil {
		item.Cancelled = *p.Cancelled
	}
	if p.HighestBidId != nil {
		item.HighestBidId = *p.HighestBidId
	}
	if p.ListBidIds != nil {
		item.ListBidIds = *p.ListBidIds
	}
	if p.UpdatedAt != nil {
		item.UpdatedAt = *p.UpdatedAt
	}
	return nil
}

func (r *memAuctionRepo) NextId(c ctx.Ctx) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *memAuctionRepo) CountSold(c ctx.Ctx, chainId domain.ChainId) (int, error) {
	count := 0
	for _, item := range r.items {
		if item.ChainId == chainId && item.Sold {
			count++
		}
	}
	return count, nil
}

type memBidRepo struct {
	bids map[int64]*auction.Bid
	seq  int64
}

func newMemBidRepo() *memBidRepo {
	return &memBidRepo{bids: map[int64]*auction.Bid{}}
}

func (r *memBidRepo) FindOne(c ctx.Ctx, bidId int64) (*auction.Bid, error) {
	bid, ok := r.bids[bidId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return bid, nil
}

func (r *memBidRepo) FindByAuction(c ctx.Ctx, auctionId int64) ([]*auction.Bid, error) {
	res := []*auction.Bid{}
	for _, bid := range r.bids {
		if bid.AuctionId == auctionId {
			res = append(res, bid)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].BidId < res[j].BidId })
	return res, nil
}

func (r *memBidRepo) Create(c ctx.Ctx, bid *auction.Bid) error {
	bid.Bidder = bid.Bidder.ToLower()
	r.bids[bid.BidId] = bid
	return nil
}

func (r *memBidRepo) Update(c ctx.Ctx, bidId int64, p *auction.BidPatchable) error {
	bid, ok := r.bids[bidId]
	if !ok {
		return domain.ErrNotFound
	}
	if p.BidPriceUsd != nil {
		bid.BidPriceUsd = *p.BidPriceUsd
	}
	if p.BidPriceToken != nil {
		bid.BidPriceToken = *p.BidPriceToken
	}
	if p.BidPriceWithFeeToken != nil {
		bid.BidPriceWithFeeToken = *p.BidPriceWithFeeToken
	}
	if p.ReservePriceToken != nil {
		bid.ReservePriceToken = *p.ReservePriceToken
	}
	if p.OracleRoundId != nil {
		bid.OracleRoundId = *p.OracleRoundId
	}
	if p.Status != nil {
		bid.Status = *p.Status
	}
	if p.UpdatedAt != nil {
		bid.UpdatedAt = *p.UpdatedAt
	}
	return nil
}

func (r *memBidRepo) NextId(c ctx.Ctx) (int64, error) {
	r.seq++
	return r.seq, nil
}

type memNftRegistry struct {
	items    map[string]*domain.NftItem
	counters map[string]int64
}

func newMemNftRegistry() *memNftRegistry {
	return &memNftRegistry{
		items:    map[string]*domain.NftItem{},
		counters: map[string]int64{},
	}
}

func nftKey(id *domain.NftId) string {
	return fmt.Sprintf("%d:%s:%s", id.ChainId, id.Contract.ToLowerStr(), id.TokenId)
}

func (r *memNftRegistry) NextTokenId(c ctx.Ctx, chainId domain.ChainId, contract domain.Address) (domain.TokenId, error) {
	key := fmt.Sprintf("%d:%s", chainId, contract.ToLowerStr())
	r.counters[key]++
	return domain.TokenId(strconv.FormatInt(r.counters[key], 10)), nil
}

func (r *memNftRegistry) Mint(c ctx.Ctx, item *domain.NftItem) error {
	key := nftKey(item.ToId())
	if _, ok := r.items[key]; ok {
		return domain.ErrConflict
	}
	item.Contract = item.Contract.ToLower()
	item.Owner = item.Owner.ToLower()
	item.Creator = item.Creator.ToLower()
	r.items[key] = item
	return nil
}

func (r *memNftRegistry) FindOne(c ctx.Ctx, id *domain.NftId) (*domain.NftItem, error) {
	item, ok := r.items[nftKey(id)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (r *memNftRegistry) OwnerOf(c ctx.Ctx, id *domain.NftId) (domain.Address, error) {
	item, err := r.FindOne(c, id)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return item.Owner, nil
}

func (r *memNftRegistry) CreatorOf(c ctx.Ctx, id *domain.NftId) (domain.Address, error) {
	item, err := r.FindOne(c, id)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return item.Creator, nil
}

func (r *memNftRegistry) IsApprovedOrOwner(c ctx.Ctx, id *domain.NftId, operator domain.Address) (bool, error) {
	item, err := r.FindOne(c, id)
	if err != nil {
		return false, err
	}
	return item.Owner.Equals(operator), nil
}

func (r *memNftRegistry) Transfer(c ctx.Ctx, id *domain.NftId, from, to domain.Address) error {
	item, err := r.FindOne(c, id)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(from) {
		return domain.ErrUnauthorized
	}
	item.Owner = to.ToLower()
	return nil
}

func (r *memNftRegistry) AdministratorTransfer(c ctx.Ctx, id *domain.NftId, to domain.Address) error {
	item, err := r.FindOne(c, id)
	if err != nil {
		return err
	}
	item.Owner = to.ToLower()
	return nil
}

// memTreasury mirrors the all-or-nothing semantics of the ledger.
type memTreasury struct {
	balances map[string]*uint256.Int
}

func newMemTreasury() *memTreasury {
	return &memTreasury{balances: map[string]*uint256.Int{}}
}

func treasuryKey(chainId domain.ChainId, owner, token domain.Address) string {
	return fmt.Sprintf("%d:%s:%s", chainId, owner.ToLowerStr(), token.ToLowerStr())
}

func (tr *memTreasury) Balance(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address) (domain.Amount, error) {
	balance, ok := tr.balances[treasuryKey(chainId, owner, token)]
	if !ok {
		return domain.ZeroAmount, nil
	}
	return domain.AmountFromUint256(balance), nil
}

func (tr *memTreasury) Deposit(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address, amount domain.Amount) error {
	value, err := amount.ToUint256()
	if err != nil {
		return err
	}
	key := treasuryKey(chainId, owner, token)
	balance, ok := tr.balances[key]
	if !ok {
		balance = uint256.NewInt(0)
		tr.balances[key] = balance
	}
	balance.Add(balance, value)
	return nil
}

func (tr *memTreasury) Transfer(c ctx.Ctx, chainId domain.ChainId, from, to, token domain.Address, amount domain.Amount) error {
	value, err := amount.ToUint256()
	if err != nil {
		return err
	}
	if value.IsZero() {
		return nil
	}
	fromKey := treasuryKey(chainId, from, token)
	fromBalance, ok := tr.balances[fromKey]
	if !ok || fromBalance.Lt(value) {
		return domain.ErrInsufficientPayment
	}
	fromBalance.Sub(fromBalance, value)
	return tr.Deposit(c, chainId, to, token, amount)
}

type fakeOracle struct {
	quotes map[domain.Address]*pricefeed.Quote
}

func (o *fakeOracle) GetPrice(c ctx.Ctx, chainId domain.ChainId, token domain.Address) (*pricefeed.Quote, bool, error) {
	quote, ok := o.quotes[token.ToLower()]
	if !ok {
		return nil, false, nil
	}
	return quote, true, nil
}

// engine wires the usecase against in-memory collaborators with a settable
// clock.
type engine struct {
	auctions *memAuctionRepo
	bids     *memBidRepo
	nft      *memNftRegistry
	treasury *memTreasury
	oracle   *fakeOracle
	fees     domain.FeeManager

	uc auction.UseCase
	im *impl

	now time.Time
}

func newEngine(t *testing.T) *engine {
	return newEngineWithFees(t, domain.ZeroAmount, domain.ZeroAmount)
}

func newEngineWithFees(t *testing.T, listingPrice, listingPriceSecondary domain.Amount) *engine {
	e := &engine{
		auctions: newMemAuctionRepo(),
		bids:     newMemBidRepo(),
		nft:      newMemNftRegistry(),
		treasury: newMemTreasury(),
		oracle: &fakeOracle{quotes: map[domain.Address]*pricefeed.Quote{
			domain.EmptyAddress: {Price: "10942317", Decimals: 8, TokenDecimals: 18, RoundId: "25012000"},
			usdToken:            {Price: "100000000", Decimals: 8, TokenDecimals: 18, RoundId: "77"},
		}},
		fees: feemanager.New(&feemanager.Config{
			Owner:                 adminWallet,
			FeeVerifier:           testVerifierAddress(t),
			ListingPrice:          listingPrice,
			ListingPriceSecondary: listingPriceSecondary,
		}),
		now: baseTime,
	}
	e.uc = New(&Config{
		AuctionRepo:   e.auctions,
		BidRepo:       e.bids,
		Nft:           e.nft,
		FeeManager:    e.fees,
		Oracle:        e.oracle,
		Treasury:      e.treasury,
		Marketplace:   marketplaceAddr,
		CharityWallet: charityWallet,
		Now:           func() time.Time { return e.now },
	})
	e.im = e.uc.(*impl)
	return e
}

func (e *engine) fund(t *testing.T, owner, token domain.Address, amount domain.Amount) {
	require.NoError(t, e.treasury.Deposit(ctx.Background(), testChainId, owner, token, amount))
}

func (e *engine) balance(t *testing.T, owner, token domain.Address) string {
	balance, err := e.treasury.Balance(ctx.Background(), testChainId, owner, token)
	require.NoError(t, err)
	return balance.String()
}

func (e *engine) seedNft(t *testing.T, tokenId domain.TokenId, owner, creator domain.Address, royalty int64) {
	require.NoError(t, e.nft.Mint(ctx.Background(), &domain.NftItem{
		ChainId:        testChainId,
		Contract:       nftContract,
		TokenId:        tokenId,
		Owner:          owner,
		Creator:        creator,
		RoyaltyPercent: royalty,
		TokenUri:       "ipfs://seeded",
		MintedAt:       baseTime.Unix(),
	}))
}

func (e *engine) nftOwner(t *testing.T, tokenId domain.TokenId) domain.Address {
	owner, err := e.nft.OwnerOf(ctx.Background(), &domain.NftId{ChainId: testChainId, Contract: nftContract, TokenId: tokenId})
	require.NoError(t, err)
	return owner
}

func primaryPayload(startPriceUsd, reservePriceUsd domain.Amount, withPhysical bool) *auction.CreateTokenPayload {
	return &auction.CreateTokenPayload{
		Caller:          adminWallet,
		ChainId:         testChainId,
		Contract:        nftContract,
		TokenUri:        "ipfs://QmTestToken",
		CreatorWallet:   creatorWallet,
		RoyaltyPercent:  5,
		WithPhysical:    withPhysical,
		StartPriceUsd:   startPriceUsd,
		ReservePriceUsd: reservePriceUsd,
		StartTime:       startTime,
		EndTime:         endTime,
	}
}

func (e *engine) listPrimary(t *testing.T, startPriceUsd, reservePriceUsd domain.Amount, withPhysical bool) *auction.AuctionItem {
	item, err := e.uc.CreateToken(ctx.Background(), primaryPayload(startPriceUsd, reservePriceUsd, withPhysical))
	require.NoError(t, err)
	return item
}

func (e *engine) bidFungible(t *testing.T, bidder domain.Address, auctionId int64, usd domain.Amount) *auction.Bid {
	bid, err := e.uc.BidToken(ctx.Background(), &auction.PlaceBidPayload{
		Caller:      bidder,
		AuctionId:   auctionId,
		Payment:     auction.FungiblePayment(usdToken),
		BidPriceUsd: usd,
	})
	require.NoError(t, err)
	return bid
}

func TestCreateTokenGuards(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)

	p := primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.Caller = sellerWallet
	_, err := e.uc.CreateToken(c, p)
	req.ErrorIs(err, domain.ErrUnauthorized)

	p = primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.StartTime = endTime
	p.EndTime = startTime
	_, err = e.uc.CreateToken(c, p)
	req.ErrorIs(err, domain.ErrInvalidTiming)

	p = primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.StartTime = baseTime.Add(-time.Hour)
	_, err = e.uc.CreateToken(c, p)
	req.ErrorIs(err, domain.ErrInvalidTiming)

	_, err = e.uc.CreateToken(c, primaryPayload("0", domain.ZeroAmount, false))
	req.ErrorIs(err, domain.ErrInvalidPrice)

	// reserve above start
	_, err = e.uc.CreateToken(c, primaryPayload("1000000000000000000", "2000000000000000000", false))
	req.ErrorIs(err, domain.ErrInvalidPrice)

	item := e.listPrimary(t, "1000000000000000000", "500000000000000000", true)
	req.Equal(int64(1), item.AuctionId)
	req.Equal(domain.TokenId("1"), item.TokenId)
	req.True(item.InitialList)
	req.True(item.WithPhysical)
	req.Equal(treasury.EscrowAccount, e.nftOwner(t, item.TokenId))
}

func TestListingFeeExactMatch(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngineWithFees(t, "5000", "3000")

	p := primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	_, err := e.uc.CreateToken(c, p)
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	p = primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.Value = "4999"
	_, err = e.uc.CreateToken(c, p)
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	p = primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.Value = "5001"
	_, err = e.uc.CreateToken(c, p)
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	// exact declared value but nothing in the wallet
	p = primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.Value = "5000"
	_, err = e.uc.CreateToken(c, p)
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	e.fund(t, adminWallet, domain.EmptyAddress, "5000")
	p = primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.Value = "5000"
	_, err = e.uc.CreateToken(c, p)
	req.NoError(err)
	req.Equal("5000", e.balance(t, treasury.RevenueAccount, domain.EmptyAddress))
	req.Equal("0", e.balance(t, adminWallet, domain.EmptyAddress))
}

func TestBidRaiseRule(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.fund(t, bidder1, usdToken, "10000000000000000000")
	e.fund(t, bidder2, usdToken, "10000000000000000000")

	// window not open yet
	_, err := e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.FungiblePayment(usdToken),
		BidPriceUsd: "1000000000000000000",
	})
	req.ErrorIs(err, domain.ErrInvalidTiming)

	e.now = startTime.Add(time.Minute)

	_, err = e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      adminWallet,
		AuctionId:   item.AuctionId,
		Payment:     auction.FungiblePayment(usdToken),
		BidPriceUsd: "1000000000000000000",
	})
	req.ErrorIs(err, domain.ErrUnauthorized)

	// below start price
	_, err = e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.FungiblePayment(usdToken),
		BidPriceUsd: "900000000000000000",
	})
	req.ErrorIs(err, domain.ErrInvalidPrice)

	first := e.bidFungible(t, bidder1, item.AuctionId, "1000000000000000000")
	req.Equal("1000000000000000000", first.BidPriceToken.String())
	req.Equal("1020000000000000000", first.BidPriceWithFeeToken.String())
	req.Equal("77", first.OracleRoundId.String())

	// 5% over the highest, below the 10% floor
	_, err = e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder2,
		AuctionId:   item.AuctionId,
		Payment:     auction.FungiblePayment(usdToken),
		BidPriceUsd: "1050000000000000000",
	})
	req.ErrorIs(err, domain.ErrInvalidPrice)

	// an exact 10% raise passes
	second := e.bidFungible(t, bidder2, item.AuctionId, "1100000000000000000")
	updated, err := e.uc.GetAuction(c, item.AuctionId)
	req.NoError(err)
	req.Equal(second.BidId, updated.HighestBidId)
	req.Equal([]int64{first.BidId, second.BidId}, updated.ListBidIds)

	e.now = endTime
	_, err = e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.FungiblePayment(usdToken),
		BidPriceUsd: "2000000000000000000",
	})
	req.ErrorIs(err, domain.ErrInvalidTiming)
}

func TestBidNativeValueMustCoverEscrow(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "100000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	e.fund(t, bidder1, domain.EmptyAddress, "10000000000000000000")

	// no declared value
	_, err := e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.NativePayment(),
		BidPriceUsd: "100000000000000000",
	})
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	// one unit short of the escrow
	_, err = e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.NativePayment(),
		BidPriceUsd: "100000000000000000",
		Value:       "932160894260328958",
	})
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	// a generous value only pulls the escrow amount
	bid, err := e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.NativePayment(),
		BidPriceUsd: "100000000000000000",
		Value:       "5000000000000000000",
	})
	req.NoError(err)
	req.Equal("932160894260328959", bid.BidPriceWithFeeToken.String())
	req.Equal("932160894260328959", e.balance(t, treasury.EscrowAccount, domain.EmptyAddress))
	req.Equal("9067839105739671041", e.balance(t, bidder1, domain.EmptyAddress))
}

func TestBidInsufficientBalance(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	e.fund(t, bidder1, usdToken, "1000000000000000000")

	// escrow is price plus markup, the wallet only holds the plain price
	_, err := e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.FungiblePayment(usdToken),
		BidPriceUsd: "1000000000000000000",
	})
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	updated, err := e.uc.GetAuction(c, item.AuctionId)
	req.NoError(err)
	req.False(updated.HasBids())
	req.Equal("1000000000000000000", e.balance(t, bidder1, usdToken))
}

func TestBidUnsupportedPaymentToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)

	_, err := e.uc.BidToken(c, &auction.PlaceBidPayload{
		Caller:      bidder1,
		AuctionId:   item.AuctionId,
		Payment:     auction.FungiblePayment("0x1111111111111111111111111111111111111111"),
		BidPriceUsd: "1000000000000000000",
	})
	req.ErrorIs(err, domain.ErrUnsupportedPaymentToken)
}

func TestEditBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	e.fund(t, bidder1, usdToken, "2000000000000000000")

	bid := e.bidFungible(t, bidder1, item.AuctionId, "1000000000000000000")
	req.Equal("1020000000000000000", e.balance(t, treasury.EscrowAccount, usdToken))
	req.Equal("980000000000000000", e.balance(t, bidder1, usdToken))

	// only the bidder may edit
	_, err := e.uc.EditBid(c, &auction.EditBidPayload{
		Caller:      bidder2,
		BidId:       bid.BidId,
		BidPriceUsd: "1100000000000000000",
	})
	req.ErrorIs(err, domain.ErrUnauthorized)

	// the standing highest must raise over itself
	_, err = e.uc.EditBid(c, &auction.EditBidPayload{
		Caller:      bidder1,
		BidId:       bid.BidId,
		BidPriceUsd: "1000000000000000000",
	})
	req.ErrorIs(err, domain.ErrInvalidPrice)

	edited, err := e.uc.EditBid(c, &auction.EditBidPayload{
		Caller:      bidder1,
		BidId:       bid.BidId,
		BidPriceUsd: "1100000000000000000",
	})
	req.NoError(err)
	req.Equal("1100000000000000000", edited.BidPriceToken.String())
	req.Equal("1122000000000000000", edited.BidPriceWithFeeToken.String())
	// only the delta moved
	req.Equal("1122000000000000000", e.balance(t, treasury.EscrowAccount, usdToken))
	req.Equal("878000000000000000", e.balance(t, bidder1, usdToken))
}

func TestEditBidInsufficientDelta(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	e.fund(t, bidder1, usdToken, "1020000000000000000")

	bid := e.bidFungible(t, bidder1, item.AuctionId, "1000000000000000000")
	req.Equal("0", e.balance(t, bidder1, usdToken))

	_, err := e.uc.EditBid(c, &auction.EditBidPayload{
		Caller:      bidder1,
		BidId:       bid.BidId,
		BidPriceUsd: "1100000000000000000",
	})
	req.ErrorIs(err, domain.ErrInsufficientPayment)

	unchanged, err := e.uc.GetBid(c, bid.BidId)
	req.NoError(err)
	req.Equal("1000000000000000000", unchanged.BidPriceUsd.String())
	req.Equal("1020000000000000000", unchanged.BidPriceWithFeeToken.String())
}

func TestCancelBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	e.fund(t, bidder1, usdToken, "2000000000000000000")
	e.fund(t, bidder2, usdToken, "2000000000000000000")

	first := e.bidFungible(t, bidder1, item.AuctionId, "1000000000000000000")
	second := e.bidFungible(t, bidder2, item.AuctionId, "1100000000000000000")

	// a non-highest bid withdraws freely with a full refund
	req.NoError(e.uc.CancelBid(c, bidder1, first.BidId))
	req.Equal("2000000000000000000", e.balance(t, bidder1, usdToken))
	cancelled, err := e.uc.GetBid(c, first.BidId)
	req.NoError(err)
	req.Equal(auction.BidStatusCancelled, cancelled.Status)

	// the highest is locked while the asset sits in escrow
	err = e.uc.CancelBid(c, bidder2, second.BidId)
	req.ErrorIs(err, domain.ErrInvalidState)

	// an administrative pull-out voids the listing and unlocks it
	req.NoError(e.uc.ApproveAndTransfer(c, adminWallet, item.ToNftId(), sellerWallet))
	req.NoError(e.uc.CancelBid(c, bidder2, second.BidId))
	req.Equal("2000000000000000000", e.balance(t, bidder2, usdToken))
	req.Equal("0", e.balance(t, treasury.EscrowAccount, usdToken))
}

func TestCancelAuction(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)

	// a first listing may not be cancelled by anyone
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	err := e.uc.CancelAuction(c, adminWallet, item.AuctionId)
	req.ErrorIs(err, domain.ErrInvalidState)

	e.seedNft(t, "42", sellerWallet, creatorWallet, 5)
	listed, err := e.uc.CreateExternalMintedItem(c, &auction.ExternalListingPayload{
		Caller:        sellerWallet,
		ChainId:       testChainId,
		Contract:      nftContract,
		TokenId:       "42",
		StartPriceUsd: "1000000000000000000",
		StartTime:     startTime,
		EndTime:       endTime,
	})
	req.NoError(err)
	req.Equal(treasury.EscrowAccount, e.nftOwner(t, "42"))

	err = e.uc.CancelAuction(c, bidder1, listed.AuctionId)
	req.ErrorIs(err, domain.ErrUnauthorized)

	req.NoError(e.uc.CancelAuction(c, sellerWallet, listed.AuctionId))
	req.Equal(sellerWallet, e.nftOwner(t, "42"))

	// already terminal
	err = e.uc.CancelAuction(c, sellerWallet, listed.AuctionId)
	req.ErrorIs(err, domain.ErrInvalidState)
}

func TestCancelAuctionAfterStart(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	e.seedNft(t, "42", sellerWallet, creatorWallet, 5)
	listed, err := e.uc.CreateExternalMintedItem(c, &auction.ExternalListingPayload{
		Caller:        sellerWallet,
		ChainId:       testChainId,
		Contract:      nftContract,
		TokenId:       "42",
		StartPriceUsd: "1000000000000000000",
		StartTime:     startTime,
		EndTime:       endTime,
	})
	req.NoError(err)

	e.now = startTime
	err = e.uc.CancelAuction(c, sellerWallet, listed.AuctionId)
	req.ErrorIs(err, domain.ErrInvalidTiming)
}

func TestReclaimAuction(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	e.seedNft(t, "42", sellerWallet, creatorWallet, 5)
	listed, err := e.uc.CreateExternalMintedItem(c, &auction.ExternalListingPayload{
		Caller:        sellerWallet,
		ChainId:       testChainId,
		Contract:      nftContract,
		TokenId:       "42",
		StartPriceUsd: "1000000000000000000",
		StartTime:     startTime,
		EndTime:       endTime,
	})
	req.NoError(err)

	e.now = endTime.Add(-time.Minute)
	err = e.uc.ReclaimAuction(c, sellerWallet, listed.AuctionId)
	req.ErrorIs(err, domain.ErrInvalidTiming)

	e.now = endTime
	err = e.uc.ReclaimAuction(c, bidder1, listed.AuctionId)
	req.ErrorIs(err, domain.ErrUnauthorized)

	req.NoError(e.uc.ReclaimAuction(c, sellerWallet, listed.AuctionId))
	req.Equal(sellerWallet, e.nftOwner(t, "42"))
}

func TestReclaimAuctionWithBids(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	e.fund(t, bidder1, usdToken, "2000000000000000000")
	e.bidFungible(t, bidder1, item.AuctionId, "1000000000000000000")

	e.now = endTime
	err := e.uc.ReclaimAuction(c, adminWallet, item.AuctionId)
	req.ErrorIs(err, domain.ErrInvalidState)
}

func TestExternalListingGuards(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)
	e.seedNft(t, "42", sellerWallet, creatorWallet, 5)

	// only the holder may list
	_, err := e.uc.CreateExternalMintedItem(c, &auction.ExternalListingPayload{
		Caller:        bidder1,
		ChainId:       testChainId,
		Contract:      nftContract,
		TokenId:       "42",
		StartPriceUsd: "1000000000000000000",
		StartTime:     startTime,
		EndTime:       endTime,
	})
	req.ErrorIs(err, domain.ErrUnauthorized)

	// mismatched revenue shares
	_, err = e.uc.CreateExternalMintedItem(c, &auction.ExternalListingPayload{
		Caller:        sellerWallet,
		ChainId:       testChainId,
		Contract:      nftContract,
		TokenId:       "42",
		StartPriceUsd: "1000000000000000000",
		StartTime:     startTime,
		EndTime:       endTime,
		Beneficiaries: []domain.Address{beneficiary1},
		ShareBps:      []int64{1000, 2000},
	})
	req.ErrorIs(err, domain.ErrBadParamInput)

	_, err = e.uc.CreateExternalMintedItem(c, &auction.ExternalListingPayload{
		Caller:        sellerWallet,
		ChainId:       testChainId,
		Contract:      nftContract,
		TokenId:       "42",
		StartPriceUsd: "1000000000000000000",
		StartTime:     startTime,
		EndTime:       endTime,
	})
	req.NoError(err)

	// the token is in escrow now, a second listing conflicts
	_, err = e.uc.CreateExternalMintedItem(c, &auction.ExternalListingPayload{
		Caller:        sellerWallet,
		ChainId:       testChainId,
		Contract:      nftContract,
		TokenId:       "42",
		StartPriceUsd: "1000000000000000000",
		StartTime:     startTime,
		EndTime:       endTime,
	})
	req.ErrorIs(err, domain.ErrConflict)
}

func TestSetMinPriceIncreaseBps(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)

	req.ErrorIs(e.uc.SetMinPriceIncreaseBps(c, bidder1, 500), domain.ErrUnauthorized)
	req.ErrorIs(e.uc.SetMinPriceIncreaseBps(c, adminWallet, 20000), domain.ErrBadParamInput)
	req.NoError(e.uc.SetMinPriceIncreaseBps(c, adminWallet, 500))

	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	e.now = startTime.Add(time.Minute)
	e.fund(t, bidder1, usdToken, "2000000000000000000")
	e.fund(t, bidder2, usdToken, "2000000000000000000")

	e.bidFungible(t, bidder1, item.AuctionId, "1000000000000000000")
	// a 5% raise now clears the floor
	e.bidFungible(t, bidder2, item.AuctionId, "1050000000000000000")
}

func TestGetters(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngine(t)

	_, err := e.uc.GetHighestBid(c, 99)
	req.ErrorIs(err, domain.ErrNotFound)

	_, err = e.uc.GetBidsOfAuction(c, 99)
	req.ErrorIs(err, domain.ErrNotFound)

	item := e.listPrimary(t, "1000000000000000000", domain.ZeroAmount, false)
	_, err = e.uc.GetHighestBid(c, item.AuctionId)
	req.ErrorIs(err, domain.ErrNotFound)

	open, err := e.uc.GetOpenAuctions(c, testChainId, 0, 10)
	req.NoError(err)
	req.Len(open, 1)

	open, err = e.uc.GetOpenAuctions(c, domain.ChainId(5), 0, 10)
	req.NoError(err)
	req.Len(open, 0)

	rate, err := e.uc.GetUsdTokenPrice(c, testChainId, auction.NativePayment(), "100000000000000000")
	req.NoError(err)
	req.Equal("913883229666989176", rate.String())

	_, err = e.uc.GetUsdTokenPrice(c, testChainId, auction.FungiblePayment("0x1111111111111111111111111111111111111111"), "100000000000000000")
	req.ErrorIs(err, domain.ErrUnsupportedPaymentToken)
}

func TestWithdrawFunds(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	e := newEngineWithFees(t, "5000", "3000")

	_, err := e.uc.WithdrawFunds(c, bidder1, payoutWallet, testChainId, auction.NativePayment())
	req.ErrorIs(err, domain.ErrUnauthorized)

	_, err = e.uc.WithdrawFunds(c, adminWallet, payoutWallet, testChainId, auction.NativePayment())
	req.ErrorIs(err, domain.ErrZeroBalance)

	e.fund(t, adminWallet, domain.EmptyAddress, "5000")
	p := primaryPayload("1000000000000000000", domain.ZeroAmount, false)
	p.Value = "5000"
	_, err = e.uc.CreateToken(c, p)
	req.NoError(err)

	amount, err := e.uc.WithdrawFunds(c, adminWallet, payoutWallet, testChainId, auction.NativePayment())
	req.NoError(err)
	req.Equal("5000", amount.String())
	req.Equal("5000", e.balance(t, payoutWallet, domain.EmptyAddress))
	req.Equal("0", e.balance(t, treasury.RevenueAccount, domain.EmptyAddress))
}
