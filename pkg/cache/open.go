package cache

import (
	"context"
	"strings"

	apperr "github.com/matzehuels/cardlayout/pkg/errors"
)

// Backend names accepted by Open.
const (
	BackendNone   = "none"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendNone, BackendFile, BackendSQLite, BackendRedis, BackendMongo}

// Config selects and addresses a cache backend.
type Config struct {
	Backend    string
	Dir        string
	SQLitePath string
	RedisURL   string
	MongoURI   string
}

// BackendOf names the backend behind c. Caches from outside this package
// are reported as "custom".
func BackendOf(c Cache) string {
	switch c.(type) {
	case nil, *NullCache:
		return BackendNone
	case *FileCache:
		return BackendFile
	case *SQLiteCache:
		return BackendSQLite
	case *RedisCache:
		return BackendRedis
	case *MongoCache:
		return BackendMongo
	default:
		return "custom"
	}
}

// Open creates the cache named by cfg.Backend. An empty backend is the
// null cache.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if err := apperr.ValidatePath(cfg.Dir); err != nil {
			return nil, err
		}
		return NewFileCache(cfg.Dir)
	case BackendSQLite:
		return NewSQLiteCache(cfg.SQLitePath)
	case BackendRedis:
		if err := apperr.ValidateBackendURL(cfg.RedisURL, "redis", "rediss"); err != nil {
			return nil, err
		}
		return NewRedisCache(ctx, cfg.RedisURL)
	case BackendMongo:
		if err := apperr.ValidateBackendURL(cfg.MongoURI, "mongodb", "mongodb+srv"); err != nil {
			return nil, err
		}
		return NewMongoCache(ctx, cfg.MongoURI)
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidConfig,
			"unknown cache backend %q (must be one of: %s)", cfg.Backend, strings.Join(Backends, ", "))
	}
}
