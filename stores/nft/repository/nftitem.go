package repository

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/service/query"
)

type nftMongoRegistry struct {
	q query.Mongo
}

func NewNftRegistry(q query.Mongo) domain.NftRegistry {
	return &nftMongoRegistry{q: q}
}

func idSelector(id *domain.NftId) bson.M {
	return bson.M{
		"chainId":  id.ChainId,
		"contract": id.Contract.ToLower(),
		"tokenId":  id.TokenId,
	}
}

func (r *nftMongoRegistry) findOne(c bCtx.Ctx, id *domain.NftId) (*domain.NftItem, error) {
	item := &domain.NftItem{}
	if err := r.q.FindOne(c, domain.TableNftItems, idSelector(id), item); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return item, nil
}

type tokenCounterDoc struct {
	Name string `bson:"name"`
	Seq  int64  `bson:"seq"`
}

func (r *nftMongoRegistry) NextTokenId(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address) (domain.TokenId, error) {
	res := &tokenCounterDoc{}
	name := fmt.Sprintf("tokens:%d:%s", chainId, contract.ToLowerStr())
	if err := r.q.Increment(c, domain.TableCounters, bson.M{"name": name}, res, "seq", int64(1)); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("q.Increment failed")
		return "", err
	}
	return domain.TokenId(strconv.FormatInt(res.Seq, 10)), nil
}

func (r *nftMongoRegistry) FindOne(c bCtx.Ctx, id *domain.NftId) (*domain.NftItem, error) {
	return r.findOne(c, id)
}

func (r *nftMongoRegistry) Mint(c bCtx.Ctx, item *domain.NftItem) error {
	item.Contract = item.Contract.ToLower()
	item.Owner = item.Owner.ToLower()
	item.Creator = item.Creator.ToLower()
	if err := r.q.Insert(c, domain.TableNftItems, item); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  item.ToId(),
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *nftMongoRegistry) OwnerOf(c bCtx.Ctx, id *domain.NftId) (domain.Address, error) {
	item, err := r.findOne(c, id)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return item.Owner, nil
}

func (r *nftMongoRegistry) CreatorOf(c bCtx.Ctx, id *domain.NftId) (domain.Address, error) {
	item, err := r.findOne(c, id)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return item.Creator, nil
}

func (r *nftMongoRegistry) IsApprovedOrOwner(c bCtx.Ctx, id *domain.NftId, operator domain.Address) (bool, error) {
	item, err := r.findOne(c, id)
	if err != nil {
		return false, err
	}
	return item.Owner.Equals(operator), nil
}

func (r *nftMongoRegistry) Transfer(c bCtx.Ctx, id *domain.NftId, from, to domain.Address) error {
	item, err := r.findOne(c, id)
	if err != nil {
		return err
	}
	if !item.Owner.Equals(from) {
		return domain.ErrUnauthorized
	}
	return r.setOwner(c, id, to)
}

func (r *nftMongoRegistry) AdministratorTransfer(c bCtx.Ctx, id *domain.NftId, to domain.Address) error {
	if _, err := r.findOne(c, id); err != nil {
		return err
	}
	return r.setOwner(c, id, to)
}

func (r *nftMongoRegistry) setOwner(c bCtx.Ctx, id *domain.NftId, to domain.Address) error {
	updater := bson.M{"owner": to.ToLower()}
	if err := r.q.Patch(c, domain.TableNftItems, idSelector(id), updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
