package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/thereayou/projectconnect/internal/config"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/middleware"
	"github.com/thereayou/projectconnect/pkg/auth"
	"github.com/thereayou/projectconnect/pkg/logger"
)

type Server struct {
	Router     *gin.Engine
	Config     *config.Config
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("postgres connect failed")
	}

	// Redis опционален: без него logout не инвалидирует токены
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal().Err(err).Msg("redis connect failed")
		}
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	router := gin.New()
	router.Use(logger.GinLogger(), logger.GinRecovery())
	router.Use(middleware.CORS())
	router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())

	APIEndpoints(router, cfg, dbConn, jwtMgr, rdb)

	return &Server{
		Router:     router,
		Config:     cfg,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
	}
}

func (s *Server) Run() {
	logger.Info().Str("port", s.Config.Port).Msg("server starting")
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		logger.Fatal().Err(err).Msg("server run error")
	}
}
