// Package di はアプリケーションの依存関係を組み立てます。
package di

import (
	"os"
	"strconv"
)

// Config はサーバー全体の設定を保持します。DB と Redis の設定はそれぞれのパッケージが読み込みます。
type Config struct {
	Port                string
	JWTSecret           string
	ThemeFile           string
	HitMode             string
	RegenCron           string
	CacheRefreshHour    int
	WSMessagesPerSecond int
}

// LoadConfig は環境変数から設定を読み込みます。
func LoadConfig() Config {
	return Config{
		Port:                getenv("PORT", "8080"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		ThemeFile:           os.Getenv("CHART_THEME_FILE"),
		HitMode:             os.Getenv("CHART_HIT_MODE"),
		RegenCron:           os.Getenv("SERIES_REGEN_CRON"),
		CacheRefreshHour:    getenvInt("SERIES_CACHE_REFRESH_HOUR", 2, 0, 23),
		WSMessagesPerSecond: getenvInt("CHART_WS_RATE", 60, 0, 10000),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt は範囲外・不正な値の場合に def を返します。
func getenvInt(key string, def, lo, hi int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < lo || v > hi {
		return def
	}
	return v
}
