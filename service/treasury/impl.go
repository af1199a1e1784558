package treasury

import (
	"github.com/holiman/uint256"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/database/mongoclient"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) Treasury {
	return &impl{q: q}
}

func accountSelector(chainId domain.ChainId, owner, token domain.Address) *Account {
	return &Account{
		ChainId: chainId,
		Owner:   owner.ToLower(),
		Token:   token.ToLower(),
	}
}

func (im *impl) balanceOf(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address) (*uint256.Int, error) {
	acct := &Account{}
	selector, err := mongoclient.MakeBsonM(accountSelector(chainId, owner, token))
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := im.q.FindOne(c, domain.TableLedger, selector, acct); err == query.ErrNotFound {
		return uint256.NewInt(0), nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
			"token": token,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return acct.Balance.ToUint256()
}

func (im *impl) setBalance(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address, balance *uint256.Int) error {
	selector, err := mongoclient.MakeBsonM(accountSelector(chainId, owner, token))
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	update := accountSelector(chainId, owner, token)
	update.Balance = domain.AmountFromUint256(balance)
	if err := im.q.Upsert(c, domain.TableLedger, selector, update); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
			"token": token,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Balance(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address) (domain.Amount, error) {
	balance, err := im.balanceOf(c, chainId, owner, token)
	if err != nil {
		return domain.ZeroAmount, err
	}
	return domain.AmountFromUint256(balance), nil
}

func (im *impl) Deposit(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address, amount domain.Amount) error {
	value, err := amount.ToUint256()
	if err != nil {
		return err
	}
	balance, err := im.balanceOf(c, chainId, owner, token)
	if err != nil {
		return err
	}
	return im.setBalance(c, chainId, owner, token, balance.Add(balance, value))
}

func (im *impl) Transfer(c ctx.Ctx, chainId domain.ChainId, from, to, token domain.Address, amount domain.Amount) error {
	value, err := amount.ToUint256()
	if err != nil {
		return err
	}
	if value.IsZero() {
		return nil
	}

	fromBalance, err := im.balanceOf(c, chainId, from, token)
	if err != nil {
		return err
	}
	if fromBalance.Lt(value) {
		return domain.ErrInsufficientPayment
	}
	toBalance, err := im.balanceOf(c, chainId, to, token)
	if err != nil {
		return err
	}

	if err := im.setBalance(c, chainId, from, token, fromBalance.Sub(fromBalance, value)); err != nil {
		return err
	}
	if err := im.setBalance(c, chainId, to, token, toBalance.Add(toBalance, value)); err != nil {
		return err
	}
	return nil
}
