// Package usecase はサンプル系列の生成・取得に関するビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrSeriesNotFound is returned when no samples are stored for a symbol.
	ErrSeriesNotFound = errors.New("series not found")

	// ErrSymbolNotFound is returned when regeneration targets an unknown or inactive symbol.
	ErrSymbolNotFound = errors.New("symbol not found")
)
