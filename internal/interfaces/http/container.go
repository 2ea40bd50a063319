package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/giftex-inc/giftex/internal/infrastructure/auth"
	"github.com/giftex-inc/giftex/internal/infrastructure/config"
	"github.com/giftex-inc/giftex/internal/infrastructure/ratelimit"
	"github.com/giftex-inc/giftex/internal/infrastructure/storage"
	"github.com/giftex-inc/giftex/internal/interfaces/http/middleware"
	sharedDB "github.com/giftex-inc/giftex/internal/shared/db"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers and middlewares
// together and owns the shared infrastructure services.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *middleware.RateLimiter
	quoteLimiter   *middleware.RateLimiter

	jwtSvc     *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	mediaStore *storage.MediaStore
	txManager  *sharedDB.TransactionManager
	markdown   markdown.Service
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.jwtSvc = auth.NewJWTService(
		c.cfg.Auth.JWTSecret,
		c.cfg.Auth.AccessExpMinutes,
		c.cfg.Auth.RefreshExpDays,
	)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.BcryptCost)
	c.txManager = sharedDB.NewTransactionManager(c.db)
	c.markdown = markdown.NewService()

	mediaStore, err := storage.NewMediaStore(&c.cfg.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media store: %w", err)
	}
	c.mediaStore = mediaStore

	var limiter ratelimit.RateLimiter
	if c.cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		limiter = ratelimit.NewMemoryRateLimiter()
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.loginLimiter = middleware.NewRateLimiter(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   60,
	}, "login", c.log)
	c.quoteLimiter = middleware.NewRateLimiter(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: 5,
		RequestsPerHour:   30,
	}, "quote", c.log)

	return nil
}

// Shutdown releases infrastructure resources held by the container.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
