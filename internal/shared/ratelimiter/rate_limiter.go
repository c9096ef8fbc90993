package ratelimiter

import (
	"time"
)

// RateLimiterInterface は操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Allow() bool
}

// RateLimiter は固定ウィンドウ方式で操作の頻度を制限します。
// 単一のゴルーチンから利用されることを前提としています。
type RateLimiter struct {
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
	now       func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limitが0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return newRateLimiter(limit, interval, time.Now)
}

func newRateLimiter(limit int, interval time.Duration, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: now(),
		now:       now,
	}
}

// Allow は現在のウィンドウに余裕があればカウントしてtrueを返します。
// 上限に達している場合は待機せずにfalseを返します。
func (rl *RateLimiter) Allow() bool {
	if rl.limit <= 0 {
		return true
	}
	now := rl.now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}
	if rl.count >= rl.limit {
		return false
	}
	rl.count++
	return true
}
