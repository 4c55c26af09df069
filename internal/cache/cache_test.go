package cache

import (
	"errors"
	"testing"
	"time"

	"hedge-analyzer/internal/models"
)

func testSeries(symbol string) *models.PriceSeries {
	return &models.PriceSeries{
		Symbol: symbol,
		Points: []models.PricePoint{
			{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Close: 2500},
		},
	}
}

func TestSetGet(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	key := Key{Symbol: "RELIANCE"}
	if _, ok := c.Get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	c.Set(key, testSeries("RELIANCE"))
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.Symbol != "RELIANCE" {
		t.Errorf("got symbol %q", got.Symbol)
	}
}

func TestKeysAreRangeScoped(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	k1 := Key{Symbol: "RELIANCE", From: from, To: from.AddDate(0, 1, 0)}
	k2 := Key{Symbol: "RELIANCE", From: from, To: from.AddDate(0, 2, 0)}

	c.Set(k1, testSeries("RELIANCE"))
	if _, ok := c.Get(k2); ok {
		t.Fatal("a different time range must not hit the same entry")
	}
}

func TestExpiry(t *testing.T) {
	c := New(10*time.Millisecond, 0)
	defer c.Close()

	key := Key{Symbol: "INFOSYS"}
	c.Set(key, testSeries("INFOSYS"))
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get(key); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestFlush(t *testing.T) {
	c := New(10*time.Millisecond, 0)
	defer c.Close()

	c.Set(Key{Symbol: "A"}, testSeries("A"))
	c.Set(Key{Symbol: "B"}, testSeries("B"))
	time.Sleep(30 * time.Millisecond)

	if removed := c.Flush(); removed != 2 {
		t.Errorf("Flush removed %d, want 2", removed)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after flush, want 0", c.Len())
	}
}

func TestGetOrLoad(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	key := Key{Symbol: "HDFCBANK"}
	loads := 0
	loader := func(Key) (*models.PriceSeries, error) {
		loads++
		return testSeries("HDFCBANK"), nil
	}

	for i := 0; i < 3; i++ {
		series, err := c.GetOrLoad(key, loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if series.Symbol != "HDFCBANK" {
			t.Errorf("got symbol %q", series.Symbol)
		}
	}
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	c := New(time.Minute, 0)
	defer c.Close()

	key := Key{Symbol: "BAD"}
	wantErr := errors.New("feed unavailable")
	calls := 0
	loader := func(Key) (*models.PriceSeries, error) {
		calls++
		return nil, wantErr
	}

	for i := 0; i < 2; i++ {
		if _, err := c.GetOrLoad(key, loader); !errors.Is(err, wantErr) {
			t.Fatalf("expected load error, got %v", err)
		}
	}
	if calls != 2 {
		t.Errorf("loader ran %d times, want 2 (errors must not cache)", calls)
	}
}
