package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/directives"
	"github.com/mmdatafocus/grange_backend/graph"
	"github.com/mmdatafocus/grange_backend/middlewares"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ravilushqa/otelgqlgen"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("grange-backend")

const apqPrefix = "apq:"

// server holds what the http handlers share.
type server struct {
	cfg      *config.Config
	logger   *logrus.Logger
	store    *models.Store
	storage  utils.ObjectStorage
	tokens   *utils.TokenIssuer
	metrics  *config.Metrics
	registry *prometheus.Registry
}

// apqCache keeps persisted query strings in redis.
type apqCache struct {
	client *cache.Client
	ttl    time.Duration
}

func (c *apqCache) Add(ctx context.Context, key string, value interface{}) {
	query, ok := value.(string)
	if !ok {
		return
	}
	_ = c.client.SetValue(ctx, apqPrefix+key, query, c.ttl)
}

func (c *apqCache) Get(ctx context.Context, key string) (interface{}, bool) {
	s, ok, err := c.client.GetValue(ctx, apqPrefix+key)
	if err != nil || !ok {
		return struct{}{}, false
	}
	return s, true
}

// RateLimiter counts requests per client ip in fixed windows.
type RateLimiter struct {
	client *cache.Client
	limit  int64
	window time.Duration
}

func NewRateLimiter(client *cache.Client, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (rl *RateLimiter) RateLimitMiddleware(c *gin.Context) {
	count, err := rl.client.Incr(c.Request.Context(), "ratelimit:"+c.ClientIP(), rl.window)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	if count > rl.limit {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": fmt.Sprintf("Rate limit exceeded. Try again in %d seconds", int(rl.window.Seconds())),
		})
		return
	}
	c.Next()
}

// Defining the Graphql handler
func (s *server) graphqlHandler() gin.HandlerFunc {
	c := graph.Config{Resolvers: &graph.Resolver{
		Store:  s.store,
		Tracer: tracer,
	}}
	authorizer := directives.NewAuthorizer(s.store.Permissions, s.metrics, s.logger)
	c.Directives.IsAuthenticated = authorizer.IsAuthenticated

	h := handler.NewDefaultServer(graph.NewExecutableSchema(c))
	h.SetErrorPresenter(graph.NewErrorPresenter(s.logger))
	h.SetRecoverFunc(graph.NewRecoverFunc(s.logger))
	h.Use(otelgqlgen.Middleware())
	h.AddTransport(transport.POST{})
	h.AddTransport(transport.MultipartForm{
		MaxMemory:     32 << 20,
		MaxUploadSize: 50 << 20,
	})
	if rc := s.store.Cache(); rc != nil {
		h.Use(extension.AutomaticPersistedQuery{Cache: &apqCache{client: rc, ttl: s.cfg.APQCacheTTL}})
	}
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Defining the Playground handler
func playgroundHandler() gin.HandlerFunc {
	h := playground.Handler("GraphQL", "/query")

	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	// production requires an explicit allowlist; an empty one denies all
	if cfg.IsProduction() {
		corsConfig.AllowOrigins = cfg.CorsAllowedOrigins
		if len(corsConfig.AllowOrigins) == 0 {
			corsConfig.AllowOriginFunc = func(string) bool { return false }
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "x-token", "Origin", "Content-Type", "Authorization", middlewares.CorrelationHeader)
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition", middlewares.CorrelationHeader)
	corsConfig.AllowCredentials = true
	return corsConfig
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.Use(cors.New(corsConfig(s.cfg)))
	if s.cfg.RateLimit.Enabled && s.store != nil && s.store.Cache() != nil {
		r.Use(NewRateLimiter(s.store.Cache(), s.cfg.RateLimit.MaxRequests, s.cfg.RateLimit.Window).RateLimitMiddleware)
	}
	r.Use(middlewares.SessionMiddleware())
	r.Use(customErrorLogger(s.logger))
	r.Use(gin.Recovery())

	if s.registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}
	r.GET("/", playgroundHandler())
	// carries the refresh credential, not an access token
	if s.store != nil {
		r.GET("/token/refresh-token", s.refreshTokenHandler())
	}

	authed := r.Group("/", middlewares.AuthMiddleware(s.tokens))
	if s.store != nil {
		authed.Use(middlewares.LoaderMiddleware(s.store))
		authed.POST("/query", s.graphqlHandler())
		authed.POST("/token/revoke-token", s.revokeTokenHandler())
		authed.GET("/reports/death.xlsx", s.recordExportHandler(models.RecordDeath))
		authed.GET("/reports/saca.xlsx", s.recordExportHandler(models.RecordSaca))
		authed.GET("/reports/mobilizations.xlsx", s.mobilizationExportHandler())
	}
	if s.storage != nil {
		r.GET("/storage/photos/:photo", s.serveObjectHandler(utils.StorageFolderPhotos, "photo", false))
		authed.GET("/storage/files/:file", s.serveObjectHandler(utils.StorageFolderFiles, "file", true))
		authed.POST("/storage/upload-photo", s.uploadHandler(photoUpload))
		authed.POST("/storage/upload-file", s.uploadHandler(documentUpload))
	}
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

func newStorage(ctx context.Context, cfg config.StorageConfig) (utils.ObjectStorage, error) {
	switch cfg.Provider {
	case utils.StorageProviderGCS:
		return utils.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCSCredentialsJSON)
	case utils.StorageProviderS3:
		return utils.NewS3Storage(ctx, utils.S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	case utils.StorageProviderLocal, "":
		return utils.NewLocalStorage(cfg.PhotosPath, cfg.DocsPath)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logger := config.NewLogger(cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDatabaseWithRetry(sigCtx, cfg.Database, logger)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "database"}).Fatal(err.Error())
	}
	sqlDB, _ := db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()

	rdb, err := config.ConnectRedisWithRetry(sigCtx, cfg.Redis, logger)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "redis"}).Fatal(err.Error())
	}
	redisCache := cache.New(rdb)
	defer redisCache.Close()
	if cfg.Redis.FlushOnStart {
		if err := redisCache.Flush(sigCtx); err != nil {
			logger.WithFields(logrus.Fields{"field": "redis"}).Warn("flush on start failed: " + err.Error())
		}
	}

	// AutoMigrate can block tables; SKIP_MIGRATIONS lets a separate job run it.
	if !cfg.SkipMigrations {
		if err := models.MigrateTable(db); err != nil {
			logger.WithFields(logrus.Fields{"field": "migrations"}).Fatal(err.Error())
		}
	} else {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	}

	publisher, err := config.NewEventPublisher(sigCtx, cfg.PubSub)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "pubsub"}).Warn("event publishing disabled: " + err.Error())
		publisher = config.NopPublisher{}
	}
	defer publisher.Close()

	storage, err := newStorage(sigCtx, cfg.Storage)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "storage"}).Fatal(err.Error())
	}
	defer storage.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := config.NewMetrics(registry)
	tokens := utils.NewTokenIssuer(cfg.Token.Secret, cfg.Token.RefreshSecret, cfg.Token.Lifetime, cfg.Token.RefreshLifetime)

	store := models.NewStore(models.StoreOptions{
		DB:            db,
		Cache:         redisCache,
		Logger:        logger,
		Events:        publisher,
		Metrics:       metrics,
		Tokens:        tokens,
		PermissionTTL: cfg.PermissionCacheTTL,
		PhoneRegion:   cfg.PhoneRegion,
	})
	synced, err := store.Operations.Sync(sigCtx, models.OperationRegistry)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "operations"}).Fatal(err.Error())
	}
	logger.WithFields(logrus.Fields{"field": "operations", "count": synced}).Info("operation registry synced")

	s := &server{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		storage:  storage,
		tokens:   tokens,
		metrics:  metrics,
		registry: registry,
	}
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.router(),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()
	logger.WithFields(logrus.Fields{
		"info": "Connection Established",
	}).Info("connect to http://localhost:", cfg.Port, "/ for GraphQL playground")

	select {
	case <-sigCtx.Done():
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}
}

// customErrorLogger is a custom Gin middleware that logs only errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}
