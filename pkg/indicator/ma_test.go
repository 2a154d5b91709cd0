package indicator

import (
	"errors"
	"testing"
)

var maPrices = []float64{10, 11, 12, 13, 12, 11, 13, 15, 14, 16}

func TestSMA_Correctness(t *testing.T) {
	// SMA(3): (10+11+12)/3=11, (11+12+13)/3=12, (12+13+12)/3=12.3333, ...
	got, err := SMA(maPrices, 3)
	if err != nil {
		t.Fatalf("SMA: %v", err)
	}
	want := []float64{11, 12, 12.333333, 12, 12, 13, 14, 15}
	assertSeries(t, "SMA(3)", got, want, 0.0001)
}

func TestSMA_LengthLaw(t *testing.T) {
	for _, period := range []int{1, 3, 10} {
		got, err := SMA(maPrices, period)
		if err != nil {
			t.Fatalf("period=%d: %v", period, err)
		}
		if len(got) != len(maPrices)-period+1 {
			t.Errorf("period=%d: got %d values, want %d", period, len(got), len(maPrices)-period+1)
		}
	}
}

func TestSMA_Errors(t *testing.T) {
	_, err := SMA([]float64{1, 2}, 3)
	assertInsufficient(t, err, 2, 3)

	if _, err := SMA(maPrices, 0); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("got %v, want ErrInvalidPeriod", err)
	}
}

func TestEMA_Correctness(t *testing.T) {
	// EMA(3), multiplier 1/2. Seed (10+11+12)/3=11, then
	// 11+(13-11)/2=12, 12+(12-12)/2=12, 12+(11-12)/2=11.5, ...
	got, err := EMA(maPrices, 3)
	if err != nil {
		t.Fatalf("EMA: %v", err)
	}
	want := []float64{11, 12, 12, 11.5, 12.25, 13.625, 13.8125, 14.90625}
	assertSeries(t, "EMA(3)", got, want, 0.0001)
}

func TestEMA_Errors(t *testing.T) {
	_, err := EMA([]float64{1}, 2)
	assertInsufficient(t, err, 1, 2)

	if _, err := EMA(maPrices, -1); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("got %v, want ErrInvalidPeriod", err)
	}
}

func TestSMMA_Correctness(t *testing.T) {
	// SMMA(3). Seed 11, then (11*2+13)/3=11.6667, (11.6667*2+12)/3=11.7778, ...
	got, err := SMMA(maPrices, 3)
	if err != nil {
		t.Fatalf("SMMA: %v", err)
	}
	want := []float64{11, 11.666667, 11.777778, 11.518519, 12.012346, 13.00823, 13.33882, 14.22588}
	assertSeries(t, "SMMA(3)", got, want, 0.0001)
}

func TestSMMA_Errors(t *testing.T) {
	_, err := SMMA([]float64{1, 2}, 3)
	assertInsufficient(t, err, 2, 3)

	if _, err := SMMA(maPrices, 0); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("got %v, want ErrInvalidPeriod", err)
	}
}
