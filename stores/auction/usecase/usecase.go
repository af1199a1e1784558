package usecase

import (
	"sync"
	"time"

	"github.com/holiman/uint256"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/base/pricenormalizer"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/service/pricefeed"
	"github.com/danielNg25/dp-marketplace/service/treasury"
)

type Config struct {
	AuctionRepo auction.Repo
	BidRepo     auction.BidRepo
	Nft         domain.NftRegistry
	FeeManager  domain.FeeManager
	Oracle      pricefeed.Oracle
	Treasury    treasury.Treasury

	// identity baked into fiat authorization hashes
	Marketplace domain.Address
	// receiver of every charity leg
	CharityWallet domain.Address

	// test hook, defaults to time.Now
	Now func() time.Time
}

type impl struct {
	auctionRepo auction.Repo
	bidRepo     auction.BidRepo
	nft         domain.NftRegistry
	feeManager  domain.FeeManager
	oracle      pricefeed.Oracle
	treasury    treasury.Treasury

	marketplace   domain.Address
	charityWallet domain.Address

	now func() time.Time

	// serializes every state transition, one call settles before the next
	mu sync.Mutex
}

func New(cfg *Config) auction.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		auctionRepo:   cfg.AuctionRepo,
		bidRepo:       cfg.BidRepo,
		nft:           cfg.Nft,
		feeManager:    cfg.FeeManager,
		oracle:        cfg.Oracle,
		treasury:      cfg.Treasury,
		marketplace:   cfg.Marketplace.ToLower(),
		charityWallet: cfg.CharityWallet.ToLower(),
		now:           now,
	}
}

func (im *impl) GetAuction(c ctx.Ctx, auctionId int64) (*auction.AuctionItem, error) {
	return im.auctionRepo.FindOne(c, auctionId)
}

func (im *impl) GetOpenAuctions(c ctx.Ctx, chainId domain.ChainId, offset, limit int32) ([]*auction.AuctionItem, error) {
	optFns := []auction.FindAllOptionsFunc{
		auction.WithOpen(true),
		auction.WithPagination(offset, limit),
	}
	if chainId != 0 {
		optFns = append(optFns, auction.WithChainId(chainId))
	}
	return im.auctionRepo.FindAll(c, optFns...)
}

func (im *impl) GetItemsSold(c ctx.Ctx, chainId domain.ChainId) (int, error) {
	return im.auctionRepo.CountSold(c, chainId)
}

func (im *impl) GetBid(c ctx.Ctx, bidId int64) (*auction.Bid, error) {
	return im.bidRepo.FindOne(c, bidId)
}

func (im *impl) GetBidsOfAuction(c ctx.Ctx, auctionId int64) ([]*auction.Bid, error) {
	if _, err := im.auctionRepo.FindOne(c, auctionId); err != nil {
		return nil, err
	}
	return im.bidRepo.FindByAuction(c, auctionId)
}

func (im *impl) GetHighestBid(c ctx.Ctx, auctionId int64) (*auction.Bid, error) {
	item, err := im.auctionRepo.FindOne(c, auctionId)
	if err != nil {
		return nil, err
	}
	if item.HighestBidId == 0 {
		return nil, domain.ErrNotFound
	}
	return im.bidRepo.FindOne(c, item.HighestBidId)
}

func (im *impl) GetUsdTokenPrice(c ctx.Ctx, chainId domain.ChainId, payment auction.PaymentMethod, usd domain.Amount) (domain.Amount, error) {
	usdValue, err := usd.ToUint256()
	if err != nil {
		return domain.ZeroAmount, domain.ErrBadParamInput
	}
	quote, supported, err := im.oracle.GetPrice(c, chainId, payment.TokenAddress())
	if err != nil {
		return domain.ZeroAmount, err
	}
	if !supported {
		return domain.ZeroAmount, domain.ErrUnsupportedPaymentToken
	}
	price, err := quote.Price.ToUint256()
	if err != nil {
		return domain.ZeroAmount, err
	}
	amount, err := pricenormalizer.ToTokenAmount(usdValue, price, quote.Decimals, quote.TokenDecimals)
	if err != nil {
		return domain.ZeroAmount, err
	}
	return domain.AmountFromUint256(amount), nil
}

// meetsRaiseRule checks newUsd against the standing highest, basis points.
// An exact minimum raise passes.
func meetsRaiseRule(newUsd, highestUsd *uint256.Int, minBps int64) bool {
	lhs := new(uint256.Int).Mul(newUsd, uint256.NewInt(auction.ShareBasisBps))
	rhs := new(uint256.Int).Mul(highestUsd, uint256.NewInt(uint64(auction.ShareBasisBps+minBps)))
	return !lhs.Lt(rhs)
}

func (im *impl) checkBidPrice(c ctx.Ctx, item *auction.AuctionItem, usd *uint256.Int) error {
	if usd.IsZero() {
		return domain.ErrInvalidPrice
	}
	start, err := item.StartPriceUsd.ToUint256()
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": item.AuctionId,
		}).Error("bad stored start price")
		return err
	}
	if usd.Lt(start) {
		return domain.ErrInvalidPrice
	}
	if item.HighestBidId == 0 {
		return nil
	}
	highest, err := im.bidRepo.FindOne(c, item.HighestBidId)
	if err != nil {
		return err
	}
	highestUsd, err := highest.BidPriceUsd.ToUint256()
	if err != nil {
		return err
	}
	minBps, err := im.feeManager.MinPriceIncreaseBps(c)
	if err != nil {
		return err
	}
	if !meetsRaiseRule(usd, highestUsd, minBps) {
		return domain.ErrInvalidPrice
	}
	return nil
}
