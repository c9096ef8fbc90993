package di

import (
	"context"
	"fmt"
	"time"

	"stock_chart/internal/app/router"
	pngadapter "stock_chart/internal/feature/chart/adapters/png"
	svgadapter "stock_chart/internal/feature/chart/adapters/svg"
	"stock_chart/internal/feature/chart/adapters/theme"
	"stock_chart/internal/feature/chart/domain/entity"
	charthandler "stock_chart/internal/feature/chart/transport/handler"
	chartws "stock_chart/internal/feature/chart/transport/ws"
	chartusecase "stock_chart/internal/feature/chart/usecase"
	seriesadapters "stock_chart/internal/feature/series/adapters"
	serieshandler "stock_chart/internal/feature/series/transport/handler"
	seriesusecase "stock_chart/internal/feature/series/usecase"
	symbollistadapters "stock_chart/internal/feature/symbollist/adapters"
	symbolentity "stock_chart/internal/feature/symbollist/domain/entity"
	symbollisthandler "stock_chart/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_chart/internal/feature/symbollist/usecase"
	"stock_chart/internal/platform/cache"
	"stock_chart/internal/platform/http/handler"
	"stock_chart/internal/platform/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App は組み立て済みのサーバーコンポーネントです。
type App struct {
	Router *gin.Engine
	Seed   *seriesusecase.SeedUsecase
}

// NewSeedUsecase は系列生成ユースケースを組み立てます。rdb が nil の場合キャッシュは無効です。
func NewSeedUsecase(db *gorm.DB, rdb *redis.Client, cfg Config) *seriesusecase.SeedUsecase {
	return seriesusecase.NewSeedUsecase(
		symbollistadapters.NewSymbolRepository(db),
		newSampleRepository(db, rdb, cfg),
		newGenerator(),
	)
}

func newGenerator() *seriesusecase.Generator {
	return seriesusecase.NewGenerator(seriesusecase.DefaultGeneratorConfig(), nil)
}

func newSampleRepository(db *gorm.DB, rdb *redis.Client, cfg Config) seriesusecase.SampleRepository {
	// Redisキャッシュでラップ
	ttl := cache.RefreshTTL(cfg.CacheRefreshHour, time.UTC)
	return cache.NewCachingSampleRepository(rdb, ttl, seriesadapters.NewSampleRepository(db), "series")
}

// NewApp は全てのリポジトリ・ユースケース・ハンドラーを組み立て、ルーターを返します。
func NewApp(db *gorm.DB, rdb *redis.Client, cfg Config) (*App, error) {
	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		return nil, err
	}

	// Repository
	symbolRepo := symbollistadapters.NewSymbolRepository(db)
	sampleRepo := newSampleRepository(db, rdb, cfg)

	// Usecase
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)
	seriesUC := seriesusecase.NewSeriesUsecase(sampleRepo)
	seedUC := seriesusecase.NewSeedUsecase(symbolRepo, sampleRepo, newGenerator())
	chartUC := chartusecase.NewChartUsecase(seriesUC,
		chartusecase.WithHitMode(entity.ParseHitMode(cfg.HitMode)))

	// Handler
	renderer := svgadapter.NewRenderer(th)
	handlers := router.Handlers{
		Symbols: symbollisthandler.NewSymbolHandler(symbolUC),
		Series:  serieshandler.NewSeriesHandler(seriesUC, seedUC),
		Charts:  charthandler.NewChartHandler(chartUC, renderer, pngadapter.NewSnapshotter(th)),
		Session: chartws.NewSessionHandler(chartUC, renderer, chartws.Config{
			MessagesPerSecond: cfg.WSMessagesPerSecond,
		}),
		Ready: readyChecks(db, rdb),
	}

	return &App{
		Router: router.NewRouter(handlers, cfg.JWTSecret),
		Seed:   seedUC,
	}, nil
}

func readyChecks(db *gorm.DB, rdb *redis.Client) []handler.Check {
	checks := []handler.Check{{
		Name: "db",
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}
	redisCheck := handler.Check{Name: "redis"}
	if rdb != nil {
		redisCheck.Ping = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return append(checks, redisCheck)
}

// NewScheduler は SERIES_REGEN_CRON が設定されている場合に定期再生成を登録します。
// 未設定の場合は nil を返します。
func NewScheduler(cfg Config, seed *seriesusecase.SeedUsecase) (*scheduler.Scheduler, error) {
	if cfg.RegenCron == "" {
		return nil, nil
	}
	s := scheduler.New(10 * time.Minute)
	if err := s.Register("series-regen", cfg.RegenCron, seed.SeedAll); err != nil {
		return nil, fmt.Errorf("series regeneration schedule: %w", err)
	}
	return s, nil
}

// EnsureDefaultSymbols は未登録のデモ銘柄を登録します。
func EnsureDefaultSymbols(ctx context.Context, db *gorm.DB) error {
	return symbollistadapters.NewSymbolRepository(db).EnsureSymbols(ctx, symbolentity.DefaultSymbols())
}
