package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/database/mongoclient"
	"github.com/danielNg25/dp-marketplace/base/log"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/service/query"
)

type counterDoc struct {
	Name string `bson:"name"`
	Seq  int64  `bson:"seq"`
}

func nextSequence(c bCtx.Ctx, q query.Mongo, name string) (int64, error) {
	res := &counterDoc{}
	if err := q.Increment(c, domain.TableCounters, bson.M{"name": name}, res, "seq", int64(1)); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("q.Increment failed")
		return 0, err
	}
	return res.Seq, nil
}

type auctionMongoRepo struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionMongoRepo{q: q}
}

func (r *auctionMongoRepo) FindOne(c bCtx.Ctx, auctionId int64) (*auction.AuctionItem, error) {
	item := &auction.AuctionItem{}
	if err := r.q.FindOne(c, domain.TableAuctions, bson.M{"auctionId": auctionId}, item); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return item, nil
}

func buildQuery(opts auction.FindAllOptions) bson.M {
	qry := bson.M{}
	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}
	if opts.Contract != nil {
		qry["contract"] = *opts.Contract
	}
	if opts.TokenId != nil {
		qry["tokenId"] = *opts.TokenId
	}
	if opts.Sold != nil {
		qry["sold"] = *opts.Sold
	}
	if opts.Open != nil && *opts.Open {
		qry["sold"] = false
		qry["cancelled"] = false
	}
	if opts.OpenAt != nil {
		qry["startTime"] = bson.M{"$lte": *opts.OpenAt}
		qry["endTime"] = bson.M{"$gt": *opts.OpenAt}
		qry["sold"] = false
		qry["cancelled"] = false
	}
	return qry
}

func (r *auctionMongoRepo) FindAll(c bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.AuctionItem, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	sort := "-auctionId"
	if opts.SortBy != nil {
		sort = *opts.SortBy
		if opts.SortDir != nil && *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []*auction.AuctionItem{}
	if err := r.q.Search(c, domain.TableAuctions, int(opts.Offset), int(opts.Limit), sort, buildQuery(opts), &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *auctionMongoRepo) Count(c bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) (int, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return 0, err
	}
	n, err := r.q.Count(c, domain.TableAuctions, buildQuery(opts))
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (r *auctionMongoRepo) Create(c bCtx.Ctx, item *auction.AuctionItem) error {
	item.Seller = item.Seller.ToLower()
	item.Contract = item.Contract.ToLower()
	item.CreatorWallet = item.CreatorWallet.ToLower()
	if err := r.q.Insert(c, domain.TableAuctions, item); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": item.AuctionId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) Update(c bCtx.Ctx, auctionId int64, patchable *auction.AuctionPatchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableAuctions, bson.M{"auctionId": auctionId}, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) NextId(c bCtx.Ctx) (int64, error) {
	return nextSequence(c, r.q, string(domain.TableAuctions))
}

func (r *auctionMongoRepo) CountSold(c bCtx.Ctx, chainId domain.ChainId) (int, error) {
	qry := bson.M{"sold": true}
	if chainId != 0 {
		qry["chainId"] = chainId
	}
	n, err := r.q.Count(c, domain.TableAuctions, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}
