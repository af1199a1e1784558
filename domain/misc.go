package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"golang.org/x/xerrors"
)

var (
	Big1  = big.NewInt(1)
	Big10 = big.NewInt(10)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", xerrors.Errorf("invalid id %s", i)
	}
	return fmt.Sprintf("%064x", id), nil
}

type BlockNumber uint64

type TxHash string

// Amount is a decimal string holding a 256-bit unsigned integer, the wire and
// storage form of every token amount in the system.
type Amount string

const ZeroAmount = Amount("0")

func (a Amount) String() string {
	return string(a)
}

// ToUint256 parses the amount, rejecting empty, negative and overflowing input.
func (a Amount) ToUint256() (*uint256.Int, error) {
	n, err := uint256.FromDecimal(string(a))
	if err != nil {
		return nil, ErrInvalidNumberFormat
	}
	return n, nil
}

func (a Amount) IsZero() bool {
	n, err := a.ToUint256()
	if err != nil {
		return false
	}
	return n.IsZero()
}

func AmountFromUint256(n *uint256.Int) Amount {
	return Amount(n.Dec())
}

func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
