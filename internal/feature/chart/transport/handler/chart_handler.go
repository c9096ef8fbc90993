// Package handler はchartフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"stock_chart/internal/api"
	pngadapter "stock_chart/internal/feature/chart/adapters/png"
	"stock_chart/internal/feature/chart/domain/entity"
	"stock_chart/internal/feature/chart/usecase"
	seriesentity "stock_chart/internal/feature/series/domain/entity"
	seriesusecase "stock_chart/internal/feature/series/usecase"

	"github.com/gin-gonic/gin"
)

const (
	defaultWidth  = 800
	defaultHeight = 400
	maxSide       = 4000
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// ChartOpener は銘柄のチャートを開くユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartOpener interface {
	Open(ctx context.Context, symbol string) (*usecase.Chart, error)
}

// SceneRenderer はシーンをSVGに変換します。
type SceneRenderer interface {
	Render(sc entity.Scene) []byte
}

// Snapshotter は系列をPNG画像に変換します。
type Snapshotter interface {
	Render(samples []seriesentity.Sample, width, height int) ([]byte, error)
}

// ChartHandler はチャートページと静的画像のリクエストを処理します。
type ChartHandler struct {
	charts ChartOpener
	svg    SceneRenderer
	png    Snapshotter
}

// NewChartHandler はChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(charts ChartOpener, svg SceneRenderer, png Snapshotter) *ChartHandler {
	return &ChartHandler{charts: charts, svg: svg, png: png}
}

// Page はチャートを表示するHTMLページを返します。描画はWebSocketセッション経由で行われます。
//
// エンドポイント例:
// GET /charts/:code
func (h *ChartHandler) Page(c *gin.Context) {
	code := c.Param("code")
	if _, err := h.charts.Open(c.Request.Context(), code); err != nil {
		writeError(c, code, err)
		return
	}

	var buf bytes.Buffer
	data := struct{ Code, WSPath string }{
		Code:   code,
		WSPath: "/charts/" + url.PathEscape(code) + "/ws",
	}
	if err := pageTmpl.Execute(&buf, data); err != nil {
		slog.Error("render chart page failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// SVG は指定サイズのチャートをSVGで返します。hoverを指定するとツールチップ付きで描画します。
//
// エンドポイント例:
// GET /charts/:code/svg?width=800&height=400&hover=12
func (h *ChartHandler) SVG(c *gin.Context) {
	code := c.Param("code")
	width, err1 := parseSide(c.DefaultQuery("width", strconv.Itoa(defaultWidth)))
	height, err2 := parseSide(c.DefaultQuery("height", strconv.Itoa(defaultHeight)))
	if err := errors.Join(err1, err2); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	chart, err := h.charts.Open(c.Request.Context(), code)
	if err != nil {
		writeError(c, code, err)
		return
	}
	chart.Resize(entity.Dimensions{Width: width, Height: height})

	if raw, ok := c.GetQuery("hover"); ok {
		i, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "hover must be an integer"})
			return
		}
		if err := chart.Enter(i); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
	}

	c.Data(http.StatusOK, "image/svg+xml", h.svg.Render(chart.Scene()))
}

// PNG は系列のPNGスナップショットを返します。
//
// エンドポイント例:
// GET /charts/:code/png?width=900&height=400
func (h *ChartHandler) PNG(c *gin.Context) {
	code := c.Param("code")
	// 未指定・不正な値はスナップショット側のデフォルトに任せる
	width, _ := strconv.Atoi(c.Query("width"))
	height, _ := strconv.Atoi(c.Query("height"))

	chart, err := h.charts.Open(c.Request.Context(), code)
	if err != nil {
		writeError(c, code, err)
		return
	}

	b, err := h.png.Render(chart.Samples(), width, height)
	if err != nil {
		if errors.Is(err, pngadapter.ErrTooFewSamples) {
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("render png failed", "symbol", code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func writeError(c *gin.Context, code string, err error) {
	if errors.Is(err, seriesusecase.ErrSeriesNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error("open chart failed", "symbol", code, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
}

// parseSide accepts a finite, non-negative size no larger than maxSide.
func parseSide(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > maxSide {
		return 0, errors.New("invalid size " + strconv.Quote(s))
	}
	return v, nil
}
