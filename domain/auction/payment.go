package auction

import (
	"github.com/danielNg25/dp-marketplace/domain"
)

type PaymentKind string

const (
	PaymentKindNative   PaymentKind = "native"
	PaymentKindFungible PaymentKind = "fungible"
)

// PaymentMethod identifies what a bid is denominated in. Native payments use
// the chain coin and carry domain.EmptyAddress as token.
type PaymentMethod struct {
	Kind  PaymentKind    `json:"kind" bson:"kind"`
	Token domain.Address `json:"token" bson:"token"`
}

func NativePayment() PaymentMethod {
	return PaymentMethod{Kind: PaymentKindNative, Token: domain.EmptyAddress}
}

func FungiblePayment(token domain.Address) PaymentMethod {
	return PaymentMethod{Kind: PaymentKindFungible, Token: token.ToLower()}
}

func (p PaymentMethod) IsNative() bool {
	return p.Kind == PaymentKindNative
}

// TokenAddress is the pay-token registry key for this method
func (p PaymentMethod) TokenAddress() domain.Address {
	if p.IsNative() {
		return domain.EmptyAddress
	}
	return p.Token.ToLower()
}

func (p PaymentMethod) Equals(o PaymentMethod) bool {
	return p.Kind == o.Kind && p.TokenAddress().Equals(o.TokenAddress())
}

func (p PaymentMethod) IsValid() bool {
	switch p.Kind {
	case PaymentKindNative:
		return true
	case PaymentKindFungible:
		return !p.Token.IsEmpty() && !p.Token.Equals(domain.EmptyAddress)
	}
	return false
}
