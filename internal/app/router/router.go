// Package router はHTTPルーティングを定義します。
package router

import (
	"time"

	charthandler "stock_chart/internal/feature/chart/transport/handler"
	chartws "stock_chart/internal/feature/chart/transport/ws"
	serieshandler "stock_chart/internal/feature/series/transport/handler"
	symbollisthandler "stock_chart/internal/feature/symbollist/transport/handler"
	"stock_chart/internal/platform/http/handler"
	jwtmw "stock_chart/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// Handlers はルーターに登録するハンドラーをまとめたものです。
type Handlers struct {
	Symbols *symbollisthandler.SymbolHandler
	Series  *serieshandler.SeriesHandler
	Charts  *charthandler.ChartHandler
	Session *chartws.SessionHandler
	Ready   []handler.Check
}

// NewRouter はルートを登録したginエンジンを返します。
// /admin 配下は role=admin のJWTが必要です。
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(2*time.Second, h.Ready...))

	r.GET("/symbols", h.Symbols.List)
	r.GET("/series/:code", h.Series.GetSeries)

	charts := r.Group("/charts/:code")
	{
		charts.GET("", h.Charts.Page)
		charts.GET("/svg", h.Charts.SVG)
		charts.GET("/png", h.Charts.PNG)
		charts.GET("/ws", h.Session.Serve)
	}

	// 管理者用ルート
	admin := r.Group("/admin")
	admin.Use(jwtmw.AuthRequired(jwtSecret, jwtmw.RoleAdmin))
	{
		admin.POST("/series/:code/regenerate", h.Series.Regenerate)
	}

	return r
}
