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

type bidMongoRepo struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) auction.BidRepo {
	return &bidMongoRepo{q: q}
}

func (r *bidMongoRepo) FindOne(c bCtx.Ctx, bidId int64) (*auction.Bid, error) {
	bid := &auction.Bid{}
	if err := r.q.FindOne(c, domain.TableBids, bson.M{"bidId": bidId}, bid); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return bid, nil
}

func (r *bidMongoRepo) FindByAuction(c bCtx.Ctx, auctionId int64) ([]*auction.Bid, error) {
	res := []*auction.Bid{}
	if err := r.q.Search(c, domain.TableBids, 0, 0, "bidId", bson.M{"auctionId": auctionId}, &res); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *bidMongoRepo) Create(c bCtx.Ctx, bid *auction.Bid) error {
	bid.Bidder = bid.Bidder.ToLower()
	if err := r.q.Insert(c, domain.TableBids, bid); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"bidId": bid.BidId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *bidMongoRepo) Update(c bCtx.Ctx, bidId int64, patchable *auction.BidPatchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableBids, bson.M{"bidId": bidId}, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"bidId": bidId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *bidMongoRepo) NextId(c bCtx.Ctx) (int64, error) {
	return nextSequence(c, r.q, string(domain.TableBids))
}
