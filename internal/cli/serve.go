package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/timeaxis/pkg/cache"
	"github.com/matzehuels/timeaxis/pkg/pipeline"
	"github.com/matzehuels/timeaxis/pkg/server"
)

type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	redisPrefix   string
	noCache       bool
}

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the axis API over HTTP",
		Long: `Serve key points, mapping, stepping and rendering over HTTP.

Layouts and artifacts are cached in the local cache directory, or in Redis
when --redis is set so that several instances share one cache.`,
		Example: `  timeaxis serve --addr :8080
  timeaxis serve --redis localhost:6379 --redis-prefix timeaxis:`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				store cache.Cache
				err   error
			)
			if opts.redisAddr != "" && !opts.noCache {
				store, err = cache.NewRedisCache(ctx, cache.RedisOptions{
					Addr:     opts.redisAddr,
					Password: opts.redisPassword,
					DB:       opts.redisDB,
					Prefix:   opts.redisPrefix,
				})
				if err != nil {
					return err
				}
				c.Logger.Info("using redis cache", "addr", opts.redisAddr, "db", opts.redisDB)
			} else {
				store, err = newCache(opts.noCache)
				if err != nil {
					return err
				}
			}

			runner := pipeline.NewRunner(store, nil, c.Logger)
			defer runner.Close()

			c.Logger.Info("listening", "addr", opts.addr)
			return server.New(runner, c.Logger).ListenAndServe(ctx, opts.addr)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&opts.addr, "addr", ":8080", "listen address")
	fl.StringVar(&opts.redisAddr, "redis", "", "Redis address for a shared cache")
	fl.StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	fl.IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	fl.StringVar(&opts.redisPrefix, "redis-prefix", appName+":", "prefix for Redis keys")
	fl.BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	return cmd
}
