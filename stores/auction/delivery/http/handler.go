package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/delivery"
	"github.com/danielNg25/dp-marketplace/base/pricenormalizer"
	"github.com/danielNg25/dp-marketplace/domain"
	"github.com/danielNg25/dp-marketplace/domain/auction"
	"github.com/danielNg25/dp-marketplace/middleware"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, uc auction.UseCase) {
	h := &handler{auction: uc}

	g := e.Group("/auctions")
	g.GET("", h.getOpenAuctions)
	g.GET("/sold-count", h.getItemsSold)
	g.GET("/quote", h.getUsdTokenPrice)
	g.GET("/:auctionId", h.getAuction)
	g.GET("/:auctionId/bids", h.getBidsOfAuction)
	g.GET("/:auctionId/highest-bid", h.getHighestBid)
	g.POST("", h.createToken, middleware.WalletAddress())
	g.POST("/re-auction", h.reAuctionToken, middleware.WalletAddress())
	g.POST("/external", h.createExternalMintedItem, middleware.WalletAddress())
	g.DELETE("/:auctionId", h.cancelAuction, middleware.WalletAddress())
	g.POST("/:auctionId/reclaim", h.reclaimAuction, middleware.WalletAddress())
	g.POST("/:auctionId/accept/:bidId", h.acceptBid, middleware.WalletAddress())

	b := e.Group("/bids")
	b.GET("/:bidId", h.getBid)
	b.POST("", h.bidToken, middleware.WalletAddress())
	b.PUT("/:bidId", h.editBid, middleware.WalletAddress())
	b.DELETE("/:bidId", h.cancelBid, middleware.WalletAddress())
	b.POST("/fiat", h.bidTokenFiat, middleware.WalletAddress())
	b.PUT("/fiat/:bidId", h.editBidFiat, middleware.WalletAddress())
	b.DELETE("/fiat/:bidId", h.cancelBidFiat, middleware.WalletAddress())

	a := e.Group("/admin", middleware.WalletAddress())
	a.POST("/transfer", h.approveAndTransfer)
	a.POST("/withdraw", h.withdrawFunds)
	a.PUT("/min-price-increase", h.setMinPriceIncreaseBps)
}

// errStatus maps domain errors onto http statuses, MakeJsonResp handles the
// not-found case itself.
func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidTiming),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidNumberFormat),
		errors.Is(err, domain.ErrInsufficientPayment),
		errors.Is(err, domain.ErrUnsupportedPaymentToken),
		errors.Is(err, domain.ErrZeroBalance):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func paramInt64(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return v, nil
}

// parseUsd converts a human readable usd string like "0.1" into the
// 18 decimal fixed point form used everywhere below the http layer.
func parseUsd(s string) (domain.Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return domain.ZeroAmount, domain.ErrInvalidNumberFormat
	}
	scaled := d.Shift(pricenormalizer.UsdDecimals)
	if !scaled.IsInteger() {
		return domain.ZeroAmount, domain.ErrInvalidNumberFormat
	}
	return domain.Amount(scaled.String()), nil
}

func (h *handler) getOpenAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `query:"chainId"`
		Offset  int32          `query:"offset"`
		Limit   int32          `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 {
		p.Limit = 20
	}

	items, err := h.auction.GetOpenAuctions(ctx, p.ChainId, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, items)
}

func (h *handler) getItemsSold(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `query:"chainId"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	count, err := h.auction.GetItemsSold(ctx, p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, count)
}

func (h *handler) getUsdTokenPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ChainId domain.ChainId `query:"chainId"`
		Token   domain.Address `query:"token"`
		Usd     string         `query:"usd" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	usd, err := parseUsd(p.Usd)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	payment := auction.NativePayment()
	if !p.Token.IsEmpty() && !p.Token.Equals(domain.EmptyAddress) {
		payment = auction.FungiblePayment(p.Token)
	}
	amount, err := h.auction.GetUsdTokenPrice(ctx, p.ChainId, payment, usd)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	auctionId, err := paramInt64(c, "auctionId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	item, err := h.auction.GetAuction(ctx, auctionId)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

func (h *handler) getBidsOfAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	auctionId, err := paramInt64(c, "auctionId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	bids, err := h.auction.GetBidsOfAuction(ctx, auctionId)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bids)
}

func (h *handler) getHighestBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	auctionId, err := paramInt64(c, "auctionId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	bid, err := h.auction.GetHighestBid(ctx, auctionId)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bid)
}

func (h *handler) getBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bidId, err := paramInt64(c, "bidId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	bid, err := h.auction.GetBid(ctx, bidId)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bid)
}

func (h *handler) createToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &auction.CreateTokenPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address

	item, err := h.auction.CreateToken(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, item)
}

func (h *handler) reAuctionToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &auction.ReAuctionPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address

	item, err := h.auction.ReAuctionToken(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, item)
}

func (h *handler) createExternalMintedItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &auction.ExternalListingPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address

	item, err := h.auction.CreateExternalMintedItem(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, item)
}

func (h *handler) cancelAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	auctionId, err := paramInt64(c, "auctionId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.auction.CancelAuction(ctx, address, auctionId); err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) reclaimAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	auctionId, err := paramInt64(c, "auctionId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.auction.ReclaimAuction(ctx, address, auctionId); err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) acceptBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	auctionId, err := paramInt64(c, "auctionId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	bidId, err := paramInt64(c, "bidId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.auction.AcceptBid(ctx, address, auctionId, bidId); err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) bidToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &auction.PlaceBidPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address

	bid, err := h.auction.BidToken(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, bid)
}

func (h *handler) editBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	bidId, err := paramInt64(c, "bidId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &auction.EditBidPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address
	p.BidId = bidId
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	bid, err := h.auction.EditBid(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bid)
}

func (h *handler) cancelBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	bidId, err := paramInt64(c, "bidId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.auction.CancelBid(ctx, address, bidId); err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) bidTokenFiat(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := &auction.FiatBidPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address

	bid, err := h.auction.BidTokenFiat(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, bid)
}

func (h *handler) editBidFiat(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	bidId, err := paramInt64(c, "bidId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &auction.FiatEditPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address
	p.BidId = bidId
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	bid, err := h.auction.EditBidFiat(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bid)
}

func (h *handler) cancelBidFiat(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	bidId, err := paramInt64(c, "bidId")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &auction.FiatCancelPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Caller = address
	p.BidId = bidId
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.CancelBidFiat(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) approveAndTransfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		ChainId  domain.ChainId `json:"chainId" validate:"required"`
		Contract domain.Address `json:"contract" validate:"required"`
		TokenId  domain.TokenId `json:"tokenId" validate:"required"`
		To       domain.Address `json:"to" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := &domain.NftId{ChainId: p.ChainId, Contract: p.Contract.ToLower(), TokenId: p.TokenId}
	if err := h.auction.ApproveAndTransfer(ctx, address, id, p.To); err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

func (h *handler) withdrawFunds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		ChainId domain.ChainId `json:"chainId" validate:"required"`
		To      domain.Address `json:"to" validate:"required"`
		Token   domain.Address `json:"token"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	payment := auction.NativePayment()
	if !p.Token.IsEmpty() && !p.Token.Equals(domain.EmptyAddress) {
		payment = auction.FungiblePayment(p.Token)
	}
	amount, err := h.auction.WithdrawFunds(ctx, address, p.To, p.ChainId, payment)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}

func (h *handler) setMinPriceIncreaseBps(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	p := struct {
		Bps int64 `json:"bps"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.SetMinPriceIncreaseBps(ctx, address, p.Bps); err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}