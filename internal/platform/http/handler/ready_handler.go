package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check は依存サービス1つ分の疎通確認です。
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// ReadyResponse は /readyz のレスポンスです。
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Ready は /readyz エンドポイントを返します。全てのチェックが成功した場合のみ200、
// いずれかが失敗した場合は503を返します。Pingがnilのチェックは "disabled" として扱います。
func Ready(timeout time.Duration, checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		res := ReadyResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, ch := range checks {
			if ch.Ping == nil {
				res.Checks[ch.Name] = "disabled"
				continue
			}
			if err := ch.Ping(ctx); err != nil {
				res.Status = "unavailable"
				res.Checks[ch.Name] = err.Error()
				continue
			}
			res.Checks[ch.Name] = "ok"
		}

		code := http.StatusOK
		if res.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, res)
	}
}
