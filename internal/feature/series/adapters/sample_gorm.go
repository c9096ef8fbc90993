// Package adapters はseriesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"stock_chart/internal/feature/series/domain/entity"
	"stock_chart/internal/feature/series/usecase"

	"gorm.io/gorm"
)

// insertBatchSize は一括INSERT時の1バッチあたりの件数です。
const insertBatchSize = 200

type sampleGorm struct {
	db *gorm.DB
}

var _ usecase.SampleRepository = (*sampleGorm)(nil)

// NewSampleRepository はGORMベースのSampleRepositoryを生成します。
func NewSampleRepository(db *gorm.DB) *sampleGorm {
	return &sampleGorm{db: db}
}

// SampleModel は samples テーブルの行を表します。
type SampleModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:sample_sym_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:sample_sym_date,priority:2"`
	Price  float64   `gorm:"not null"`
}

func (SampleModel) TableName() string {
	return "samples"
}

func toModel(e entity.Sample) SampleModel {
	return SampleModel{
		Symbol: e.Symbol,
		Date:   e.Date.UTC(),
		Price:  e.Price,
	}
}

// Replace は銘柄の既存サンプルを削除し、samplesを挿入します。
// 削除と挿入は単一トランザクションで実行されます。
func (r *sampleGorm) Replace(ctx context.Context, symbol string, samples []entity.Sample) error {
	ms := make([]SampleModel, 0, len(samples))
	for _, e := range samples {
		m := toModel(e)
		m.Symbol = symbol
		ms = append(ms, m)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("symbol = ?", symbol).Delete(&SampleModel{}).Error; err != nil {
			return err
		}
		if len(ms) == 0 {
			return nil
		}
		return tx.CreateInBatches(&ms, insertBatchSize).Error
	})
}

// Find は銘柄の全サンプルを日付の昇順で返します。
func (r *sampleGorm) Find(ctx context.Context, symbol string) ([]entity.Sample, error) {
	var rows []SampleModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Sample, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Sample{
			Symbol: m.Symbol,
			Date:   m.Date.UTC(),
			Price:  m.Price,
		})
	}
	return out, nil
}
