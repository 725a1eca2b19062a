package projection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/padocadigital/gestao-padaria/internal/domain/balance"
	"github.com/shopspring/decimal"
)

type fakeBalanceRepo struct {
	latest []*balance.DailyBalance
	err    error

	gotN int
}

func (f *fakeBalanceRepo) Upsert(ctx context.Context, b *balance.DailyBalance) error { return nil }
func (f *fakeBalanceRepo) FindByDate(ctx context.Context, date time.Time) (*balance.DailyBalance, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*balance.DailyBalance, error) {
	return nil, nil
}
func (f *fakeBalanceRepo) FindLatest(ctx context.Context, n int) ([]*balance.DailyBalance, error) {
	f.gotN = n
	return f.latest, f.err
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMovingAverage(t *testing.T) {
	repo := &fakeBalanceRepo{latest: []*balance.DailyBalance{
		{TotalPaes: 100, TotalSalgados: 20, TotalRepasse: dec("250.00"), TotalVendas: dec("250.00")},
		{TotalPaes: 80, TotalSalgados: 30, TotalRepasse: dec("200.00"), TotalVendas: dec("200.00")},
		{TotalPaes: 120, TotalSalgados: 10, TotalRepasse: dec("300.50"), TotalVendas: dec("300.50")},
	}}

	svc := NewService(repo)

	forecast, err := svc.MovingAverage(context.Background(), 7)
	if err != nil {
		t.Fatalf("MovingAverage retornou erro inesperado: %v", err)
	}

	if repo.gotN != 7 {
		t.Errorf("esperava busca dos últimos 7 fechamentos, obteve %d", repo.gotN)
	}
	if forecast.Days != 7 {
		t.Errorf("Days: esperava 7, obteve %d", forecast.Days)
	}
	// A média usa a amostra real, não a janela pedida
	if forecast.SampleSize != 3 {
		t.Errorf("SampleSize: esperava 3, obteve %d", forecast.SampleSize)
	}
	if !forecast.AvgPaes.Equal(dec("100")) {
		t.Errorf("AvgPaes: esperava 100, obteve %s", forecast.AvgPaes)
	}
	if !forecast.AvgSalgados.Equal(dec("20")) {
		t.Errorf("AvgSalgados: esperava 20, obteve %s", forecast.AvgSalgados)
	}
	if !forecast.AvgRepasse.Equal(dec("250.17")) {
		t.Errorf("AvgRepasse: esperava 250.17, obteve %s", forecast.AvgRepasse)
	}
}

func TestMovingAverageEmptySample(t *testing.T) {
	svc := NewService(&fakeBalanceRepo{})

	forecast, err := svc.MovingAverage(context.Background(), 7)
	if err != nil {
		t.Fatalf("MovingAverage retornou erro inesperado: %v", err)
	}

	if forecast.SampleSize != 0 {
		t.Errorf("SampleSize: esperava 0, obteve %d", forecast.SampleSize)
	}
	if !forecast.AvgPaes.IsZero() || !forecast.AvgRepasse.IsZero() {
		t.Errorf("médias deveriam ser zero: %+v", forecast)
	}
}

func TestMovingAverageInvalidDays(t *testing.T) {
	svc := NewService(&fakeBalanceRepo{})

	for _, days := range []int{0, -1} {
		if _, err := svc.MovingAverage(context.Background(), days); !errors.Is(err, ErrInvalidDays) {
			t.Errorf("days=%d: esperava ErrInvalidDays, obteve %v", days, err)
		}
	}
}

func TestMovingAverageRepositoryFailure(t *testing.T) {
	repo := &fakeBalanceRepo{err: errors.New("conexão recusada")}
	svc := NewService(repo)

	if _, err := svc.MovingAverage(context.Background(), 7); err == nil {
		t.Fatal("esperava erro do repositório")
	}
}
