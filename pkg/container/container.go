package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	infraCache "library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/pkg/cache"
	"library-catalog/pkg/jwt"

	"library-catalog/internal/domains/author"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"

	"library-catalog/internal/domains/publisher"
	publisherHandler "library-catalog/internal/domains/publisher/handler"
	publisherRepo "library-catalog/internal/domains/publisher/repository"
	publisherService "library-catalog/internal/domains/publisher/service"

	"library-catalog/internal/domains/book"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"

	"library-catalog/internal/domains/user"
	userHandler "library-catalog/internal/domains/user/handler"
	userRepo "library-catalog/internal/domains/user/repository"
	userService "library-catalog/internal/domains/user/service"
)

// Container holds every dependency of the application; it is the root of
// the dependency graph. Everything in it is a singleton.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Blocklist  *jwt.Blocklist
	Queue      *queue.Client

	UserRepo      user.Repository
	AuthorRepo    author.Repository
	PublisherRepo publisher.Repository
	BookRepo      book.Repository

	UserService      user.Service
	AuthorService    author.Service
	PublisherService publisher.Service
	BookService      book.Service

	AuthHandler      *userHandler.AuthHandler
	AuthorHandler    *authorHandler.AuthorHandler
	PublisherHandler *publisherHandler.PublisherHandler
	BookHandler      *bookHandler.BookHandler
}

// NewContainer initializes the dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	// Database.
	db := database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	c.DB = db

	// Redis backs both the entity cache and the token blocklist. An outage
	// is not fatal: reads fall through to Postgres and logout degrades to
	// client-side token discard.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	c.Blocklist = jwt.NewBlocklist(c.Cache)
	c.Queue = queue.NewClient(cfg.Redis)

	// Repositories.
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	// Services.
	c.UserService = userService.NewAuthService(c.UserRepo, c.JWTManager, c.Blocklist, c.Queue)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.PublisherRepo)

	// Handlers.
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Info().Str("env", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("close queue client")
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
