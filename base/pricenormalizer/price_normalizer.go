// Package pricenormalizer converts USD amounts into payment-token units and
// back, given an oracle price with its own decimal precision. All division
// truncates toward zero so no bidder ever receives a favorable rounding.
package pricenormalizer

import (
	"github.com/holiman/uint256"

	"github.com/danielNg25/dp-marketplace/domain"
)

const (
	// USD amounts are 18 decimal fixed point everywhere in the system
	UsdDecimals = 18

	feeNumerator   = 102
	feeDenominator = 100
)

func pow10(n int32) *uint256.Int {
	res := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := int32(0); i < n; i++ {
		res.Mul(res, ten)
	}
	return res
}

// scalePrice brings an oracle price to the token's precision. Both directions
// multiply, the original's precision-preserving choice.
func scalePrice(price *uint256.Int, oracleDecimals, tokenDecimals int32) *uint256.Int {
	if tokenDecimals >= oracleDecimals {
		return new(uint256.Int).Mul(price, pow10(tokenDecimals-oracleDecimals))
	}
	return new(uint256.Int).Mul(price, pow10(oracleDecimals-tokenDecimals))
}

// scaleUsd brings an 18-decimal USD amount to the token's precision.
func scaleUsd(usd *uint256.Int, tokenDecimals int32) *uint256.Int {
	if tokenDecimals >= UsdDecimals {
		return new(uint256.Int).Mul(usd, pow10(tokenDecimals-UsdDecimals))
	}
	return new(uint256.Int).Div(usd, pow10(UsdDecimals-tokenDecimals))
}

// ToTokenAmount converts a USD amount into token units at the given oracle
// price, no markup. This is the rate used for reserve and sub-split
// conversions.
func ToTokenAmount(usd, price *uint256.Int, oracleDecimals, tokenDecimals int32) (*uint256.Int, error) {
	if price == nil || price.IsZero() {
		return nil, domain.ErrUnsupportedPaymentToken
	}
	scaledPrice := scalePrice(price, oracleDecimals, tokenDecimals)
	if scaledPrice.IsZero() {
		return nil, domain.ErrUnsupportedPaymentToken
	}
	res := new(uint256.Int).Mul(scaleUsd(usd, tokenDecimals), pow10(tokenDecimals))
	return res.Div(res, scaledPrice), nil
}

// ToTokenAmountWithFee converts with the 2% market markup applied, the amount
// actually escrowed from a bidder. Rounds in the protocol's favor by at most
// one unit of the smallest token denomination.
func ToTokenAmountWithFee(usd, price *uint256.Int, oracleDecimals, tokenDecimals int32) (*uint256.Int, error) {
	amount, err := ToTokenAmount(usd, price, oracleDecimals, tokenDecimals)
	if err != nil {
		return nil, err
	}
	amount.Mul(amount, uint256.NewInt(feeNumerator))
	return amount.Div(amount, uint256.NewInt(feeDenominator)), nil
}

// FromFeeAmount strips the markup off an escrowed amount, withFee*100/102.
// Applied to a freshly converted escrow this lands one unit below the plain
// ToTokenAmount result, a deterministic truncation the callers rely on.
func FromFeeAmount(withFee *uint256.Int) *uint256.Int {
	res := new(uint256.Int).Mul(withFee, uint256.NewInt(feeDenominator))
	return res.Div(res, uint256.NewInt(feeNumerator))
}

// ToUsdAmount is the inverse of ToTokenAmount, token units back to 18-decimal
// USD at the same oracle price.
func ToUsdAmount(amount, price *uint256.Int, oracleDecimals, tokenDecimals int32) (*uint256.Int, error) {
	if price == nil || price.IsZero() {
		return nil, domain.ErrUnsupportedPaymentToken
	}
	scaledPrice := scalePrice(price, oracleDecimals, tokenDecimals)
	usdScaled := new(uint256.Int).Mul(amount, scaledPrice)
	usdScaled.Div(usdScaled, pow10(tokenDecimals))
	if tokenDecimals >= UsdDecimals {
		return usdScaled.Div(usdScaled, pow10(tokenDecimals-UsdDecimals)), nil
	}
	return usdScaled.Mul(usdScaled, pow10(UsdDecimals-tokenDecimals)), nil
}
