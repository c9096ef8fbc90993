package usecase

import (
	"math/rand/v2"
	"sync"
	"time"

	"stock_chart/internal/feature/series/domain/entity"
)

const (
	// DefaultStartPrice は系列の初期価格です。
	DefaultStartPrice = 150.0
	// DefaultDays は生成対象とする暦日数です（約2年分の営業日）。
	DefaultDays = 520
	// DefaultVolatility は1日あたりの変動率です。
	DefaultVolatility = 0.02
	// DefaultFloor は価格の下限です。
	DefaultFloor = 50.0
	// DefaultDrift は毎日掛け合わせる上昇トレンド係数です。
	DefaultDrift = 1.0001
)

// DefaultStartDate は系列の開始日です。
var DefaultStartDate = time.Date(2022, time.February, 15, 0, 0, 0, 0, time.UTC)

// GeneratorConfig はランダムウォーク生成のパラメータを保持します。
type GeneratorConfig struct {
	StartPrice float64
	StartDate  time.Time
	Days       int
	Volatility float64
	Floor      float64
	Drift      float64
}

// DefaultGeneratorConfig returns the parameters of the demo series.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		StartPrice: DefaultStartPrice,
		StartDate:  DefaultStartDate,
		Days:       DefaultDays,
		Volatility: DefaultVolatility,
		Floor:      DefaultFloor,
		Drift:      DefaultDrift,
	}
}

// Generator は有界ランダムウォークで日次サンプルを生成します。
// 複数のgoroutineから同時に利用できます。
type Generator struct {
	cfg GeneratorConfig

	mu  sync.Mutex // rnd を保護する
	rnd *rand.Rand
}

// NewGenerator は指定された設定と乱数ソースでGeneratorを生成します。
// srcがnilの場合は時刻から初期化したPCGを使用します。
func NewGenerator(cfg GeneratorConfig, src rand.Source) *Generator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>17|1)
	}
	return &Generator{cfg: cfg, rnd: rand.New(src)}
}

// Config は生成に使用される設定を返します。
func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// Generate は設定の開始価格でsymbolの系列を生成します。
func (g *Generator) Generate(symbol string) []entity.Sample {
	return g.GenerateFrom(symbol, g.cfg.StartPrice)
}

// GenerateFrom はstartPriceから始まる系列を生成します。
// 土日はスキップされるため、件数は期間内の平日数と一致します。
func (g *Generator) GenerateFrom(symbol string, startPrice float64) []entity.Sample {
	if g.cfg.Days <= 0 {
		return []entity.Sample{}
	}
	if startPrice <= 0 {
		startPrice = g.cfg.StartPrice
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	start := truncateDay(g.cfg.StartDate)
	out := make([]entity.Sample, 0, g.cfg.Days*5/7+2)
	price := startPrice
	for i := 0; i < g.cfg.Days; i++ {
		day := start.AddDate(0, 0, i)
		if isWeekend(day) {
			continue
		}

		change := (g.rnd.Float64() - 0.5) * g.cfg.Volatility * price
		price += change
		price = max(price, g.cfg.Floor)
		price *= g.cfg.Drift

		out = append(out, entity.Sample{Symbol: symbol, Date: day, Price: price})
	}
	return out
}

// CountWeekdays returns the number of Monday-to-Friday days in [start, start+days).
func CountWeekdays(start time.Time, days int) int {
	start = truncateDay(start)
	n := 0
	for i := 0; i < days; i++ {
		if !isWeekend(start.AddDate(0, 0, i)) {
			n++
		}
	}
	return n
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
