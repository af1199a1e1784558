package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/danielNg25/dp-marketplace/base/ctx"
	"github.com/danielNg25/dp-marketplace/base/database/mongoclient"
	"github.com/danielNg25/dp-marketplace/base/log"
	bValidator "github.com/danielNg25/dp-marketplace/base/validator"
	"github.com/danielNg25/dp-marketplace/domain"
	mmiddleware "github.com/danielNg25/dp-marketplace/middleware"
	"github.com/danielNg25/dp-marketplace/service/chain"
	"github.com/danielNg25/dp-marketplace/service/feemanager"
	"github.com/danielNg25/dp-marketplace/service/pricefeed"
	"github.com/danielNg25/dp-marketplace/service/query"
	"github.com/danielNg25/dp-marketplace/service/treasury"
	auction_delivery "github.com/danielNg25/dp-marketplace/stores/auction/delivery/http"
	auction_repository "github.com/danielNg25/dp-marketplace/stores/auction/repository"
	auction_usecase "github.com/danielNg25/dp-marketplace/stores/auction/usecase"
	hc_delivery "github.com/danielNg25/dp-marketplace/stores/healthcheck/delivery/http"
	hc_repo "github.com/danielNg25/dp-marketplace/stores/healthcheck/repository"
	hc_usecase "github.com/danielNg25/dp-marketplace/stores/healthcheck/usecase"
	nft_repository "github.com/danielNg25/dp-marketplace/stores/nft/repository"
	paytoken_repository "github.com/danielNg25/dp-marketplace/stores/paytoken/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	archiveRpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		archiveRpcs[chainId] = networks.GetString(fmt.Sprintf("%s.archiveRpcUrl", k))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		ArchiveRpcUrls: archiveRpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	bidRepo := auction_repository.NewBidRepo(q)
	nftRegistry := nft_repository.NewNftRegistry(q)

	oracle := pricefeed.New(chainService, paytokenRepo)
	treasuryService := treasury.New(q)
	feeManager := feemanager.New(&feemanager.Config{
		Owner:                 domain.Address(viper.GetString("marketplace.owner")),
		FeeVerifier:           domain.Address(viper.GetString("marketplace.feeVerifier")),
		ListingPrice:          domain.Amount(viper.GetString("marketplace.listingPrice")),
		ListingPriceSecondary: domain.Amount(viper.GetString("marketplace.listingPriceSecondary")),
		MinPriceIncreaseBps:   viper.GetInt64("marketplace.minPriceIncreaseBps"),
	})

	hc := hc_usecase.New(hcRepo)
	auction := auction_usecase.New(&auction_usecase.Config{
		AuctionRepo:   auctionRepo,
		BidRepo:       bidRepo,
		Nft:           nftRegistry,
		FeeManager:    feeManager,
		Oracle:        oracle,
		Treasury:      treasuryService,
		Marketplace:   domain.Address(viper.GetString("marketplace.address")),
		CharityWallet: domain.Address(viper.GetString("marketplace.charityWallet")),
	})

	hc_delivery.New(e, hc)
	auction_delivery.New(e, auction)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
