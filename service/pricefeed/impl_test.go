package pricefeed

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/mocks"
)

const (
	chainId  = domain.ChainId(5)
	usdToken = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	feedAddr = domain.Address("0xd4a33860578de61dbabdc8bfdb98fd742fa7028e")
)

type fakeChainClient struct {
	calls int
	res   []interface{}
	err   error
}

func (f *fakeChainClient) Call(c bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func feedAnswer(roundId, answer int64) []interface{} {
	return []interface{}{
		big.NewInt(roundId),
		big.NewInt(answer),
		big.NewInt(0),
		big.NewInt(0),
		big.NewInt(roundId),
	}
}

func TestGetPriceUnsupportedToken(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	repo := &mocks.PayTokenRepo{}
	repo.On("FindOne", mock.Anything, chainId, usdToken).Return(nil, nil)

	oracle := New(&fakeChainClient{}, repo)

	quote, supported, err := oracle.GetPrice(c, chainId, usdToken)
	req.NoError(err)
	req.False(supported)
	req.Nil(quote)
}

func TestGetPriceNoFeedConfigured(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	repo := &mocks.PayTokenRepo{}
	repo.On("FindOne", mock.Anything, chainId, usdToken).Return(&domain.PayToken{
		ChainId: chainId,
		Address: usdToken,
	}, nil)

	_, supported, err := oracleWith(repo, &fakeChainClient{}).GetPrice(c, chainId, usdToken)
	req.NoError(err)
	req.False(supported)
}

func oracleWith(repo domain.PayTokenRepo, client *fakeChainClient) Oracle {
	return New(client, repo)
}

func TestGetPriceReadsFeed(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	repo := &mocks.PayTokenRepo{}
	repo.On("FindOne", mock.Anything, chainId, usdToken).Return(&domain.PayToken{
		ChainId:               chainId,
		Address:               usdToken,
		Decimals:              8,
		TokenDecimals:         18,
		ChainlinkProxyAddress: feedAddr,
	}, nil)

	client := &fakeChainClient{res: feedAnswer(77, 100000000)}
	oracle := oracleWith(repo, client)

	quote, supported, err := oracle.GetPrice(c, chainId, usdToken)
	req.NoError(err)
	req.True(supported)
	req.Equal(domain.Amount("100000000"), quote.Price)
	req.Equal(int32(8), quote.Decimals)
	req.Equal(int32(18), quote.TokenDecimals)
	req.Equal(domain.Amount("77"), quote.RoundId)

	// second read comes from cache
	_, _, err = oracle.GetPrice(c, chainId, usdToken)
	req.NoError(err)
	req.Equal(1, client.calls)
}

func TestGetPriceRejectsNonPositiveAnswer(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	repo := &mocks.PayTokenRepo{}
	repo.On("FindOne", mock.Anything, chainId, usdToken).Return(&domain.PayToken{
		ChainId:               chainId,
		Address:               usdToken,
		Decimals:              8,
		TokenDecimals:         18,
		ChainlinkProxyAddress: feedAddr,
	}, nil)

	client := &fakeChainClient{res: feedAnswer(78, 0)}
	_, _, err := oracleWith(repo, client).GetPrice(c, chainId, usdToken)
	req.ErrorIs(err, domain.ErrUnsupportedPaymentToken)
}
