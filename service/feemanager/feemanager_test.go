package feemanager

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/domain"
)

const (
	owner    = domain.Address("0x1d4e9c03c8e8f5f38e1d0a511b70de4f1d45f09a")
	verifier = domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	stranger = domain.Address("0x07fe9ffd9c0f1a8cb92f809fbcfdf5fa7a9d4dbd")
)

func TestDefaults(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	fm := New(&Config{Owner: owner, FeeVerifier: verifier})

	bps, err := fm.MinPriceIncreaseBps(c)
	req.NoError(err)
	req.Equal(int64(DefaultMinPriceIncreaseBps), bps)

	price, err := fm.ListingPrice(c)
	req.NoError(err)
	req.Equal(domain.ZeroAmount, price)

	price, err = fm.ListingPriceSecondary(c)
	req.NoError(err)
	req.Equal(domain.ZeroAmount, price)

	got, err := fm.Owner(c)
	req.NoError(err)
	req.Equal(owner, got)

	got, err = fm.FeeVerifier(c)
	req.NoError(err)
	req.Equal(verifier, got)
}

func TestSetMinPriceIncreaseBps(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	fm := New(&Config{Owner: owner, FeeVerifier: verifier, MinPriceIncreaseBps: 500})

	bps, err := fm.MinPriceIncreaseBps(c)
	req.NoError(err)
	req.Equal(int64(500), bps)

	req.ErrorIs(fm.SetMinPriceIncreaseBps(c, stranger, 700), domain.ErrUnauthorized)

	req.ErrorIs(fm.SetMinPriceIncreaseBps(c, owner, -1), domain.ErrBadParamInput)
	req.ErrorIs(fm.SetMinPriceIncreaseBps(c, owner, 10001), domain.ErrBadParamInput)

	req.NoError(fm.SetMinPriceIncreaseBps(c, owner, 700))
	bps, err = fm.MinPriceIncreaseBps(c)
	req.NoError(err)
	req.Equal(int64(700), bps)
}

func TestOwnerCaseInsensitive(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	fm := New(&Config{
		Owner:       domain.Address("0x1D4E9C03C8E8F5F38E1D0A511B70DE4F1D45F09A"),
		FeeVerifier: verifier,
	})
	req.NoError(fm.SetMinPriceIncreaseBps(c, owner, 900))
}
