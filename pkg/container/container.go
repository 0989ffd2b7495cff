package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"movie-catalog-backend/internal/config"
	infraCache "movie-catalog-backend/internal/infrastructure/cache"
	"movie-catalog-backend/internal/infrastructure/database"
	"movie-catalog-backend/internal/infrastructure/metrics"
	"movie-catalog-backend/internal/infrastructure/omdb"
	"movie-catalog-backend/pkg/cache"

	movieHandler "movie-catalog-backend/internal/domains/movie/handler"
	movieRepo "movie-catalog-backend/internal/domains/movie/repository"
	movieService "movie-catalog-backend/internal/domains/movie/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	// Infrastructure
	Config   *config.Config
	DB       *database.PostgresDB
	Cache    cache.Cache
	Registry *prometheus.Registry
	Metrics  *metrics.PrometheusRecorder
	OMDB     omdb.Client

	// Movie domain
	MovieRepo    movieRepo.RepositoryInterface
	MovieService movieService.ServiceInterface
	MovieHandler *movieHandler.MovieHandler

	redis *infraCache.RedisClient
}

// NewContainer initializes the whole dependency graph in order:
// config, infrastructure, repository, service, handler.
func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing...")

	c := &Container{}

	// Config first, it depends on nothing.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis cache; the repository degrades to plain DB reads when Redis
	// is down, so a failed ping only warns.
	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		log.Printf("[CONTAINER] WARNING: Redis unavailable: %v", err)
	}
	c.redis = redisClient
	c.Cache = redisClient

	// Metrics: process-wide counters, registered once, never reset.
	c.Registry = prometheus.NewRegistry()
	c.Metrics = metrics.NewPrometheusRecorder(c.Registry)

	// External metadata provider
	c.OMDB = omdb.NewHTTPClient(cfg.OMDB.BaseURL, cfg.OMDB.Timeout)

	// Movie domain: repository -> service -> handler
	c.MovieRepo = movieRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.MovieService = movieService.NewMovieService(c.MovieRepo, c.OMDB, c.Metrics, cfg.OMDB.APIKey)
	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)

	log.Println("[CONTAINER] Ready")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Printf("[CONTAINER] Redis close failed: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
