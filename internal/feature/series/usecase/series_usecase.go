package usecase

import (
	"context"
	"fmt"

	"stock_chart/internal/feature/series/domain/entity"
)

// SampleRepository はサンプル系列の永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SampleRepository interface {
	// Find は銘柄の全サンプルを日付の昇順で返します。
	Find(ctx context.Context, symbol string) ([]entity.Sample, error)
	// Replace は銘柄の系列をsamplesで置き換えます。
	Replace(ctx context.Context, symbol string, samples []entity.Sample) error
}

// SeriesUsecase は保存済み系列の読み取りを提供します。
type SeriesUsecase struct {
	repo SampleRepository
}

// NewSeriesUsecase はSeriesUsecaseの新しいインスタンスを生成します。
func NewSeriesUsecase(repo SampleRepository) *SeriesUsecase {
	return &SeriesUsecase{repo: repo}
}

// GetSeries は指定銘柄の系列を返します。系列が空の場合はErrSeriesNotFoundを返します。
func (u *SeriesUsecase) GetSeries(ctx context.Context, symbol string) ([]entity.Sample, error) {
	samples, err := u.repo.Find(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("find series %q: %w", symbol, err)
	}
	if len(samples) == 0 {
		return nil, ErrSeriesNotFound
	}
	return samples, nil
}
