package pricefeed

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielNg25/dp-marketplace/base/abi"
	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/keys"
	"github.com/danielNg25/dp-marketplace/service/cache"
	"github.com/danielNg25/dp-marketplace/service/cache/provider/primitive"
	"github.com/danielNg25/dp-marketplace/service/chain"
)

type impl struct {
	chainClient chain.Client
	paytoken    domain.PayTokenRepo
	cache       cache.Service
}

func New(chainClient chain.Client, paytoken domain.PayTokenRepo) Oracle {
	return &impl{
		chainClient: chainClient,
		paytoken:    paytoken,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "pricefeed_cache",
			Cache: primitive.NewPrimitive("pricefeed_cache", 32),
		}),
	}
}

func (im *impl) GetPrice(c ctx.Ctx, chainId domain.ChainId, token domain.Address) (*Quote, bool, error) {
	pt, err := im.paytoken.FindOne(c, chainId, token.ToLower())
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
		}).Error("paytoken.FindOne failed")
		return nil, false, err
	}

	if pt == nil || pt.ChainlinkProxyAddress.IsEmpty() {
		return nil, false, nil
	}

	var res Quote

	key := keys.CacheKey(strconv.Itoa(int(chainId)), string(token.ToLower()))

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		quote, err := im.latestRoundData(c, pt)
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"token":   token,
			}).Error("latestRoundData failed")
			return nil, err
		}
		return quote, nil
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"token":   token,
		}).Error("cache.GetByFunc failed")
		return nil, false, err
	}

	return &res, true, nil
}

func (im *impl) latestRoundData(c ctx.Ctx, pt *domain.PayToken) (*Quote, error) {
	feedAddr := common.HexToAddress(string(pt.ChainlinkProxyAddress))

	res, err := im.chainClient.Call(c, int32(pt.ChainId), feedAddr, nil, abi.ChainlinkFeedABI, "latestRoundData")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": pt.ChainId,
			"feed":    pt.ChainlinkProxyAddress,
		}).Error("chainClient.Call failed")
		return nil, err
	}

	roundId := res[0].(*big.Int)
	answer := res[1].(*big.Int)
	if answer.Sign() <= 0 {
		return nil, domain.ErrUnsupportedPaymentToken
	}

	return &Quote{
		Price:         domain.Amount(answer.String()),
		Decimals:      pt.Decimals,
		TokenDecimals: pt.TokenDecimals,
		RoundId:       domain.Amount(roundId.String()),
	}, nil
}
