package auction

import (
	"github.com/holiman/uint256"

	"github.com/danielNg25/dp-marketplace/domain"
)

const (
	// fee numerator/denominator of the fixed 2% sale markup
	FeeNumerator   = 102
	FeeDenominator = 100

	// share basis for beneficiary splits
	ShareBasisBps = 10000
)

// Payout is the settlement split of one accepted bid. All legs are in payment
// token units and sum exactly to Total, the escrowed sellPriceWithFee.
type Payout struct {
	Charity       *uint256.Int
	Creator       *uint256.Int
	Seller        *uint256.Int
	Beneficiaries []*uint256.Int
	Platform      *uint256.Int
	Total         *uint256.Int
}

func pct(amount *uint256.Int, numerator int64) *uint256.Int {
	res := new(uint256.Int).Mul(amount, uint256.NewInt(uint64(numerator)))
	return res.Div(res, uint256.NewInt(100))
}

// SellPriceWithFee is the amount escrowed for a bid, bidPriceToken*102/100.
func SellPriceWithFee(bidPriceToken *uint256.Int) *uint256.Int {
	res := new(uint256.Int).Mul(bidPriceToken, uint256.NewInt(FeeNumerator))
	return res.Div(res, uint256.NewInt(FeeDenominator))
}

// ComputePayout splits bidPriceToken*102/100 between charity, creator, seller,
// beneficiaries and platform for the listing's sale scenario. The platform leg
// is the residual, never an independently rounded percentage, so the legs sum
// exactly with every truncation absorbed into the platform share.
func ComputePayout(item *AuctionItem, bidPriceToken, reservePriceToken *uint256.Int) (*Payout, error) {
	total := SellPriceWithFee(bidPriceToken)
	p := &Payout{
		Charity:  uint256.NewInt(0),
		Creator:  uint256.NewInt(0),
		Seller:   uint256.NewInt(0),
		Platform: uint256.NewInt(0),
		Total:    total,
	}

	if item.InitialList {
		if item.WithPhysical {
			if bidPriceToken.Lt(reservePriceToken) {
				return nil, domain.ErrInvalidPrice
			}
			aboveReserve := new(uint256.Int).Sub(bidPriceToken, reservePriceToken)
			p.Charity = new(uint256.Int).Add(pct(aboveReserve, 80), pct(reservePriceToken, 20))
			p.Creator = pct(reservePriceToken, 65)
		} else {
			p.Charity = pct(bidPriceToken, 10)
			p.Creator = pct(bidPriceToken, 85)
		}
	} else {
		p.Charity = pct(bidPriceToken, 10)
		p.Seller = pct(bidPriceToken, 80)
		if item.IsCustodianWallet {
			if item.RoyaltyPercent > 2 {
				p.Creator = pct(bidPriceToken, 2)
			}
		} else {
			p.Creator = pct(bidPriceToken, item.RoyaltyPercent)
		}

		if len(item.Beneficiaries) > 0 {
			if len(item.Beneficiaries) != len(item.ShareBps) {
				return nil, domain.ErrBadParamInput
			}
			shared := uint256.NewInt(0)
			for _, bps := range item.ShareBps {
				cut := new(uint256.Int).Mul(p.Seller, uint256.NewInt(uint64(bps)))
				cut.Div(cut, uint256.NewInt(ShareBasisBps))
				p.Beneficiaries = append(p.Beneficiaries, cut)
				shared.Add(shared, cut)
			}
			if shared.Gt(p.Seller) {
				return nil, domain.ErrBadParamInput
			}
			p.Seller = new(uint256.Int).Sub(p.Seller, shared)
		}
	}

	spent := new(uint256.Int).Add(p.Charity, p.Creator)
	spent.Add(spent, p.Seller)
	for _, cut := range p.Beneficiaries {
		spent.Add(spent, cut)
	}
	if spent.Gt(total) {
		return nil, domain.ErrInvalidPrice
	}
	p.Platform = new(uint256.Int).Sub(total, spent)
	return p, nil
}

// ValidateShares checks a beneficiary list at listing time, equal lengths and
// a bps sum no greater than the whole seller leg.
func ValidateShares(beneficiaries []domain.Address, shareBps []int64) error {
	if len(beneficiaries) != len(shareBps) {
		return domain.ErrBadParamInput
	}
	var sum int64
	for _, bps := range shareBps {
		if bps <= 0 {
			return domain.ErrBadParamInput
		}
		sum += bps
	}
	if sum > ShareBasisBps {
		return domain.ErrBadParamInput
	}
	return nil
}
