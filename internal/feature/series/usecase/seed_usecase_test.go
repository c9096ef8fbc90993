package usecase_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"stock_chart/internal/feature/series/domain/entity"
	"stock_chart/internal/feature/series/usecase"
	symbolentity "stock_chart/internal/feature/symbollist/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSymbolReader struct {
	symbols []symbolentity.Symbol
	listErr error
	findErr error
}

func (m *mockSymbolReader) ListActive(ctx context.Context) ([]symbolentity.Symbol, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.symbols, nil
}

func (m *mockSymbolReader) FindByCode(ctx context.Context, code string) (*symbolentity.Symbol, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, s := range m.symbols {
		if s.Code == code {
			return &s, nil
		}
	}
	return nil, nil
}

func shortGenerator() *usecase.Generator {
	cfg := usecase.DefaultGeneratorConfig()
	cfg.Days = 14
	return usecase.NewGenerator(cfg, rand.NewPCG(1, 1))
}

func TestSeedUsecase_SeedAll(t *testing.T) {
	t.Parallel()

	symbols := &mockSymbolReader{symbols: []symbolentity.Symbol{
		{Code: "DEMO", StartPrice: 150, IsActive: true},
		{Code: "CHEAP", StartPrice: 60, IsActive: true},
	}}
	repo := &mockSampleRepository{}

	err := usecase.NewSeedUsecase(symbols, repo, shortGenerator()).SeedAll(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.Replaced, 2)
	for code, samples := range repo.Replaced {
		assert.Len(t, samples, 10, "two weeks of weekdays for %s", code)
		for _, s := range samples {
			assert.Equal(t, code, s.Symbol)
		}
	}
	// 初日は開始価格の±1%以内
	assert.InDelta(t, 60, repo.Replaced["CHEAP"][0].Price, 60*0.011)
}

func TestSeedUsecase_SeedAll_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	symbols := &mockSymbolReader{symbols: []symbolentity.Symbol{
		{Code: "BAD", StartPrice: 150, IsActive: true},
		{Code: "GOOD", StartPrice: 150, IsActive: true},
	}}
	repo := &mockSampleRepository{
		ReplaceFunc: func(ctx context.Context, symbol string, samples []entity.Sample) error {
			if symbol == "BAD" {
				return ErrDB
			}
			return nil
		},
	}

	err := usecase.NewSeedUsecase(symbols, repo, shortGenerator()).SeedAll(context.Background())
	assert.ErrorIs(t, err, ErrDB)
	assert.Contains(t, err.Error(), "BAD")
	assert.Contains(t, repo.Replaced, "GOOD")
	assert.NotContains(t, repo.Replaced, "BAD")
}

func TestSeedUsecase_SeedAll_ListError(t *testing.T) {
	t.Parallel()

	listErr := errors.New("list failed")
	err := usecase.NewSeedUsecase(&mockSymbolReader{listErr: listErr}, &mockSampleRepository{}, shortGenerator()).
		SeedAll(context.Background())
	assert.ErrorIs(t, err, listErr)
}

func TestSeedUsecase_SeedAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &mockSampleRepository{}
	symbols := &mockSymbolReader{symbols: []symbolentity.Symbol{{Code: "DEMO", IsActive: true}}}

	err := usecase.NewSeedUsecase(symbols, repo, shortGenerator()).SeedAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.Replaced)
}

func TestSeedUsecase_Regenerate(t *testing.T) {
	t.Parallel()

	findErr := errors.New("lookup failed")

	tests := []struct {
		name      string
		symbols   *mockSymbolReader
		code      string
		wantN     int
		wantErr   error
		replaceOK bool
	}{
		{
			name:      "success: active symbol",
			symbols:   &mockSymbolReader{symbols: []symbolentity.Symbol{{Code: "DEMO", StartPrice: 150, IsActive: true}}},
			code:      "DEMO",
			wantN:     10,
			replaceOK: true,
		},
		{
			name:    "error: unknown symbol",
			symbols: &mockSymbolReader{},
			code:    "NOPE",
			wantErr: usecase.ErrSymbolNotFound,
		},
		{
			name:    "error: inactive symbol",
			symbols: &mockSymbolReader{symbols: []symbolentity.Symbol{{Code: "OLD", IsActive: false}}},
			code:    "OLD",
			wantErr: usecase.ErrSymbolNotFound,
		},
		{
			name:    "error: lookup failure",
			symbols: &mockSymbolReader{findErr: findErr},
			code:    "DEMO",
			wantErr: findErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockSampleRepository{}
			n, err := usecase.NewSeedUsecase(tt.symbols, repo, shortGenerator()).Regenerate(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantN, n)
			_, replaced := repo.Replaced[tt.code]
			assert.Equal(t, tt.replaceOK, replaced)
		})
	}
}

// lockedSampleRepository は並行呼び出しを記録するスレッドセーフなリポジトリです。
type lockedSampleRepository struct {
	mu       sync.Mutex
	replaced [][]entity.Sample
}

func (r *lockedSampleRepository) Find(ctx context.Context, symbol string) ([]entity.Sample, error) {
	return nil, errors.New("not used")
}

func (r *lockedSampleRepository) Replace(ctx context.Context, symbol string, samples []entity.Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaced = append(r.replaced, samples)
	return nil
}

// TestSeedUsecase_Regenerate_Concurrent はcronとadminハンドラが同じGeneratorを
// 同時に使う状況を再現します。-raceで実行してください。
func TestSeedUsecase_Regenerate_Concurrent(t *testing.T) {
	t.Parallel()

	symbols := &mockSymbolReader{symbols: []symbolentity.Symbol{{Code: "DEMO", StartPrice: 150, IsActive: true}}}
	repo := &lockedSampleRepository{}
	cfg := usecase.DefaultGeneratorConfig()
	cfg.Days = 60
	uc := usecase.NewSeedUsecase(symbols, repo, usecase.NewGenerator(cfg, nil))

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Regenerate(context.Background(), "DEMO")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, repo.replaced, workers)
	want := usecase.CountWeekdays(cfg.StartDate, cfg.Days)
	for _, samples := range repo.replaced {
		assert.Len(t, samples, want)
		for _, s := range samples {
			assert.GreaterOrEqual(t, s.Price, cfg.Floor)
		}
	}
}
