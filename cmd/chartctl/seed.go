package main

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"stock_chart/internal/app/di"
	"stock_chart/internal/platform/db"
	infraredis "stock_chart/internal/platform/redis"
)

func newSeedCmd() *cobra.Command {
	var (
		symbol  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate and store the series of every active symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			dbCfg := db.LoadConfigFromEnv()
			dbCfg.RunMigrations = true
			gdb, err := db.Open(dbCfg)
			if err != nil {
				return err
			}
			if err := di.EnsureDefaultSymbols(ctx, gdb); err != nil {
				return fmt.Errorf("register symbols: %w", err)
			}

			// キャッシュの無効化のためにRedisがあれば使う
			var rdb *redisv9.Client
			if rcfg := infraredis.LoadConfig(); rcfg.Enabled() {
				if tmp, err := infraredis.NewRedisClient(ctx, rcfg); err == nil {
					rdb = tmp
					defer rdb.Close()
				}
			}

			uc := di.NewSeedUsecase(gdb, rdb, di.LoadConfig())
			if symbol != "" {
				n, err := uc.Regenerate(ctx, symbol)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seed ok: %s (%d samples)\n", symbol, n)
				return nil
			}
			if err := uc.SeedAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "regenerate a single symbol instead of all active symbols")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall deadline")
	return cmd
}
