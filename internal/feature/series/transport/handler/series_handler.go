// Package handler はseriesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stock_chart/internal/api"
	"stock_chart/internal/feature/series/domain/entity"
	"stock_chart/internal/feature/series/transport/http/dto"
	"stock_chart/internal/feature/series/usecase"

	"github.com/gin-gonic/gin"
)

// SeriesUsecase は系列取得のユースケースインターフェースです。
type SeriesUsecase interface {
	GetSeries(ctx context.Context, symbol string) ([]entity.Sample, error)
}

// Regenerator は系列の再生成を行うユースケースインターフェースです。
type Regenerator interface {
	Regenerate(ctx context.Context, code string) (int, error)
}

// SeriesHandler は系列データのHTTPリクエストを処理します。
type SeriesHandler struct {
	uc    SeriesUsecase
	regen Regenerator
}

// NewSeriesHandler はSeriesHandlerの新しいインスタンスを生成します。
func NewSeriesHandler(uc SeriesUsecase, regen Regenerator) *SeriesHandler {
	return &SeriesHandler{uc: uc, regen: regen}
}

// GetSeries は銘柄コードを受け取り、系列をJSONで返します。
//
// エンドポイント例:
// GET /series/:code
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	code := c.Param("code")

	samples, err := h.uc.GetSeries(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("get series failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]dto.SampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, dto.SampleResponse{Date: s.DateString(), Price: s.Price})
	}
	c.JSON(http.StatusOK, out)
}

// Regenerate は銘柄の系列を作り直します。管理者用JWTが必要なルートに登録されます。
//
// エンドポイント例:
// POST /admin/series/:code/regenerate
func (h *SeriesHandler) Regenerate(c *gin.Context) {
	code := c.Param("code")

	n, err := h.regen.Regenerate(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("regenerate series failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.RegenerateResponse{Symbol: code, Samples: n})
}
