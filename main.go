package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whynotact/backend/handlers"
	"github.com/whynotact/backend/internal/config"
	contentrepo "github.com/whynotact/backend/internal/content/repository"
	contentsvc "github.com/whynotact/backend/internal/content/service"
	"github.com/whynotact/backend/internal/database"
	subrepo "github.com/whynotact/backend/internal/submission/repository"
	subsvc "github.com/whynotact/backend/internal/submission/service"
	"github.com/whynotact/backend/internal/tokens"
	"github.com/whynotact/backend/pkg/logger"
	"github.com/whynotact/backend/pkg/metrics"
	"github.com/whynotact/backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// Production should use a stricter policy.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races; fall
	// back to the in-memory store when unconfigured or unreachable.
	ctx := context.Background()
	var mongoDB *mongo.Database
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			mongoDB = client.Database(cfg.MongoDB.Database)
		}
	}

	var submissions subsvc.Service
	var contents contentsvc.Service
	if mongoDB != nil {
		submissions = subsvc.New(subrepo.NewMongoRepo(mongoDB))
		contents = contentsvc.New(contentrepo.NewMongoRepo(mongoDB))
	} else {
		logger.Warnf("using in-memory store; submissions will not survive restarts")
		submissions = subsvc.New(subrepo.NewMemoryRepo())
		contents = contentsvc.New(contentrepo.NewMemoryRepo())
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["store"] = mongoDB != nil
		if mongoDB == nil && cfg.MongoDB.URI != "" {
			ready = false
		}

		// Redis readiness only matters when the distributed limiter is on
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	api := r.Group("/api")

	// Optional anti-spam limiter on the submission routes only; reads stay
	// unthrottled.
	var submitMW []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			submitMW = append(submitMW, middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			submitMW = append(submitMW, middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.NewPetitionHandler(submissions).Register(api, submitMW...)
	handlers.NewStoryHandler(submissions).Register(api, submitMW...)
	handlers.NewContentHandler(contents).Register(api)

	if cfg.Admin.JWTSecret != "" {
		ver := tokens.NewHMACVerifier(cfg.Admin.JWTSecret)
		handlers.NewAdminHandler(submissions).Register(api, ver)
	} else {
		logger.Warnf("administrative routes not registered because ADMIN_JWT_SECRET is unset")
	}

	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting whynotact backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
