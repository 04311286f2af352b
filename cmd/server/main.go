package main

import (
	"context"
	"fmt"
	"net/http"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"github.com/gin-gonic/gin"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/robfig/cron/v3"
	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/sarilacivert/matchcenter-service/client"
	"github.com/sarilacivert/matchcenter-service/config"
	"github.com/sarilacivert/matchcenter-service/handler"
	loggerinternal "github.com/sarilacivert/matchcenter-service/logger"
	"github.com/sarilacivert/matchcenter-service/middleware"
	"github.com/sarilacivert/matchcenter-service/phase"
	"github.com/sarilacivert/matchcenter-service/repository"
	"github.com/sarilacivert/matchcenter-service/service"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "Server starts running the server",
		Run:   startServer,
	}

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func startServer(_ *cobra.Command, _ []string) {
	cfg := config.Parse[config.Server]()

	logger := loggerinternal.SetupLogger()

	r := gin.Default()

	db := repository.EstablishDatabaseConnection(cfg.PG)
	sqlxDB := repository.SQLXFromGorm(db)
	redisClient := cache.EstablishRedisConnection(cfg.Redis)
	cacheService := cache.NewRedisCache(redisClient)
	httpClient := http.Client{}

	ctx := context.Background()
	cloudTasksClient, err := cloudtasks.NewClient(ctx)
	if err != nil {
		panic(err)
	}

	defer cloudTasksClient.Close()

	liveAPIClient := client.NewLiveAPIClient(&httpClient, logger, cfg.ExternalAPI.LiveAPIBaseURL, cfg.ExternalAPI.LiveAPIKey)
	summaryAPIClient := client.NewSummaryAPIClient(&httpClient, logger, cfg.ExternalAPI.SummaryAPIBaseURL)
	mediaClient := client.NewMediaClient(&httpClient, logger, cfg.ExternalAPI.MediaBaseURL)
	pushClient := client.NewPushClient(&httpClient, logger, cfg.Push.GatewayURL, cfg.Push.ServerKey)
	taskClient := client.NewTaskClient(cfg.GoogleCloud, cloudTasksClient)

	matchSummaryRepository := repository.NewMatchSummaryRepository(db)
	fixtureRepository := repository.NewFixtureRepository(db)
	playerRepository := repository.NewPlayerRepository(db)
	subscriptionRepository := repository.NewSubscriptionRepository(db)
	standingsRepository := repository.NewStandingsRepository(sqlxDB)

	fixtureService := service.NewFixtureService(
		summaryAPIClient,
		fixtureRepository,
		cacheService,
		cfg.ExternalAPI,
		cfg.Cache.FixturesTTL,
		logger,
	)
	squadService := service.NewSquadService(
		liveAPIClient,
		playerRepository,
		cacheService,
		cfg.ExternalAPI.TeamID,
		cfg.App.BaseURL,
		cfg.Cache.SquadTTL,
		logger,
	)
	standingsService := service.NewStandingsService(
		summaryAPIClient,
		standingsRepository,
		cacheService,
		cfg.ExternalAPI.League,
		cfg.Cache.StandingsTTL,
		logger,
	)
	notifier := service.NewPushNotifier(pushClient, subscriptionRepository, logger)
	matchSummaryService := service.NewMatchSummaryService(
		summaryAPIClient,
		matchSummaryRepository,
		taskClient,
		notifier,
		cacheService,
		cfg.ExternalAPI,
		cfg.Cache.SummaryTTL,
		cfg.GoogleCloud.SummaryCheckRetry,
		logger,
	)
	liveMatchService := service.NewLiveMatchService(
		fixtureService,
		matchSummaryService,
		taskClient,
		liveAPIClient,
		phase.NewRealClock(),
		cfg.Live,
		cfg.GoogleCloud,
		logger,
	)
	mediaService := service.NewMediaService(mediaClient, cacheService, cfg.Cache.MediaTTL, logger)
	subscriptionService := service.NewSubscriptionService(subscriptionRepository, logger)
	refresher := service.NewRefresher(
		fixtureService,
		squadService,
		standingsService,
		cacheService,
		cfg.ExternalAPI.TeamID,
		cfg.ExternalAPI.League,
		logger,
	)

	liveHandler := handler.NewLiveHandler(liveMatchService)
	summaryHandler := handler.NewSummaryHandler(matchSummaryService)
	fixtureHandler := handler.NewFixtureHandler(fixtureService)
	squadHandler := handler.NewSquadHandler(squadService)
	standingsHandler := handler.NewStandingsHandler(standingsService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	triggerHandler := handler.NewTriggerHandler(matchSummaryService)

	v1 := r.Group("/v1")
	apiKey := v1.Group("").
		Use(middleware.APIKeyAuth(cfg.App.HashedAPIKeys, cfg.App.SecretKey)).
		Use(middleware.Timeout(cfg.App.RequestTimeout))

	googleAuth := v1.Group("").Use(middleware.ValidateGoogleAuth(cfg.GoogleCloud.TasksBaseURL))

	apiKey.GET("/live", liveHandler.State)
	apiKey.GET("/summaries/:match_id", summaryHandler.GetByID)
	apiKey.GET("/fixtures", fixtureHandler.List)
	apiKey.GET("/squad", squadHandler.List)
	apiKey.GET("/standings", standingsHandler.List)
	apiKey.POST("/subscriptions", subscriptionHandler.Create)
	apiKey.DELETE("/subscriptions", subscriptionHandler.Delete)

	// Media assets are fetched by image tags which cannot set headers.
	v1.GET("/media/*path", mediaHandler.GetAsset)

	googleAuth.POST("/triggers/summary_check", triggerHandler.CheckSummary)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Cron.RefreshSchedule, func() { refresher.RefreshAll(context.Background()) }); err != nil {
		panic(err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	if err := liveMatchService.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to start the live match lifecycle")
	}
	defer liveMatchService.Stop()

	_ = r.Run(fmt.Sprintf(":%s", cfg.App.Port))
}
