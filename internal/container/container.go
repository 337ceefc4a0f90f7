package container

import (
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/linkstash/internal/handlers"
	"github.com/serroba/linkstash/internal/mapping"
	"github.com/serroba/linkstash/internal/middleware"
	"github.com/serroba/linkstash/internal/store"
	"go.uber.org/zap"
)

// Options are the process-level options, bound to CLI flags by humacli.
type Options struct {
	Port       int    `default:"8888"           help:"Port to listen on"                             short:"p"`
	RedisAddr  string `default:"localhost:6379" help:"Redis server address"                          short:"r"`
	CodeLength int    `default:"5"              help:"Length of generated short codes"               short:"c"`
	MappingTTL string `default:"48h"            help:"Lifetime granted at creation and per renewal"`
	BaseURL    string `default:""               help:"Base URL for short links (defaults to http://localhost:<port>)"`
	LogFormat  string `default:"console"        enum:"console,json"                                  help:"Log output format"`
}

// LoggerPackage provides the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		if options.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the Redis client and the Redis-backed mapping
// store. The store owns the client's lifecycle: the injector calls its
// Shutdown when the entry point tears the container down.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})

	do.Provide(injector, func(i *do.Injector) (*store.RedisStore, error) {
		return store.NewRedisStore(do.MustInvoke[*redis.Client](i)), nil
	})
}

// MappingPackage provides the code generator and the mapping service.
func MappingPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (mapping.CodeGenerator, error) {
		options := do.MustInvoke[*Options](i)

		return mapping.NewCodeGenerator(options.CodeLength)
	})

	do.Provide(injector, func(i *do.Injector) (*mapping.Service, error) {
		options := do.MustInvoke[*Options](i)

		ttl, err := time.ParseDuration(options.MappingTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid mapping ttl %q: %w", options.MappingTTL, err)
		}

		return mapping.NewService(
			do.MustInvoke[*store.RedisStore](i),
			do.MustInvoke[mapping.CodeGenerator](i),
			ttl,
		), nil
	})
}

// HTTPPackage provides the router and the API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		router := chi.NewMux()
		router.Use(middleware.RequestLogger(do.MustInvoke[*zap.Logger](i)))

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)

		api := humachi.New(do.MustInvoke[*chi.Mux](i), huma.DefaultConfig("Linkstash", "1.0.0"))
		api.UseMiddleware(middleware.ClientID(api))

		baseURL := options.BaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("http://localhost:%d", options.Port)
		}

		links := handlers.NewLinkHandler(
			do.MustInvoke[*mapping.Service](i),
			baseURL,
			do.MustInvoke[*zap.Logger](i),
		)
		health := handlers.NewHealthHandler(
			handlers.NewRedisHealthChecker(do.MustInvoke[*redis.Client](i)),
		)

		handlers.RegisterRoutes(api, links, health)

		return api, nil
	})
}
