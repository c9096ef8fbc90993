package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	symbolentity "stock_chart/internal/feature/symbollist/domain/entity"
)

// SymbolReader は生成対象の銘柄を読み取るリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolReader interface {
	ListActive(ctx context.Context) ([]symbolentity.Symbol, error)
	FindByCode(ctx context.Context, code string) (*symbolentity.Symbol, error)
}

// SeedUsecase は銘柄ごとの系列を生成し、データベースに永続化するユースケースです。
type SeedUsecase struct {
	symbols SymbolReader
	samples SampleRepository
	gen     *Generator
}

// NewSeedUsecase は新しい SeedUsecase を作成します。
func NewSeedUsecase(symbols SymbolReader, samples SampleRepository, gen *Generator) *SeedUsecase {
	return &SeedUsecase{symbols: symbols, samples: samples, gen: gen}
}

// seedOne は銘柄の開始価格から系列を生成し、既存の系列と置き換えます。
func (su *SeedUsecase) seedOne(ctx context.Context, s symbolentity.Symbol) (int, error) {
	cs := su.gen.GenerateFrom(s.Code, s.StartPrice)
	if err := su.samples.Replace(ctx, s.Code, cs); err != nil {
		return 0, err
	}
	return len(cs), nil
}

// Regenerate は単一銘柄の系列を作り直し、生成件数を返します。
// 銘柄が存在しない、または無効な場合はErrSymbolNotFoundを返します。
func (su *SeedUsecase) Regenerate(ctx context.Context, code string) (int, error) {
	s, err := su.symbols.FindByCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("lookup symbol %q: %w", code, err)
	}
	if s == nil || !s.IsActive {
		return 0, ErrSymbolNotFound
	}
	n, err := su.seedOne(ctx, *s)
	if err != nil {
		return 0, fmt.Errorf("regenerate %q: %w", code, err)
	}
	slog.Info("series regenerated", "symbol", code, "samples", n)
	return n, nil
}

// SeedAll は全アクティブ銘柄の系列を生成します。
// 1銘柄の失敗で処理を中断せず、発生したエラーをまとめて返します。
func (su *SeedUsecase) SeedAll(ctx context.Context) error {
	symbols, err := su.symbols.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active symbols: %w", err)
	}

	var errs []error
	for _, s := range symbols {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		n, err := su.seedOne(ctx, s)
		if err != nil {
			slog.Error("seed failed", "symbol", s.Code, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Code, err))
			continue
		}
		slog.Info("series seeded", "symbol", s.Code, "samples", n)
	}
	return errors.Join(errs...)
}
