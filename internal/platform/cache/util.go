package cache

import (
	"time"
)

// TimeUntilNextRefresh は now から次の hour 時（loc のタイムゾーン）までの期間を返します。
// 系列の再生成時刻に合わせてキャッシュを失効させるために使います。
func TimeUntilNextRefresh(now time.Time, hour int, loc *time.Location) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// 今日の更新時刻が既に過ぎている場合は翌日を使用
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// RefreshTTL は TimeUntilNextRefresh を現在時刻で評価する TTLFunc を返します。
func RefreshTTL(hour int, loc *time.Location) TTLFunc {
	return func() time.Duration {
		return TimeUntilNextRefresh(time.Now(), hour, loc)
	}
}
