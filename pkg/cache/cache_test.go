package cache

import (
	"errors"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	c := New()

	if c.maxAge != DefaultMaxAge {
		t.Errorf("maxAge = %v, want %v", c.maxAge, DefaultMaxAge)
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestNewWithMaxAge_DefaultsOnInvalid(t *testing.T) {
	c := NewWithMaxAge(0)

	if c.maxAge != DefaultMaxAge {
		t.Errorf("maxAge with 0 = %v, want %v", c.maxAge, DefaultMaxAge)
	}
}

func TestGetOrFetch_CallsProducerOncePerArgs(t *testing.T) {
	c := New()

	calls := 0
	producer := func() (any, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrFetch("zaken.RetrieveCaseDetails", "123456782/ZAAK-001", producer)
		if err != nil {
			t.Fatalf("GetOrFetch returned error: %v", err)
		}
		if got != "value" {
			t.Errorf("GetOrFetch = %v, want %q", got, "value")
		}
	}

	if calls != 1 {
		t.Errorf("producer called %d times, want 1", calls)
	}
}

func TestGetOrFetch_DistinctArgsCachedSeparately(t *testing.T) {
	c := New()

	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	a, _ := c.GetOrFetch("zaken.RetrieveCaseDetails", "123456782/ZAAK-001", producer)
	b, _ := c.GetOrFetch("zaken.RetrieveCaseDetails", "123456782/ZAAK-002", producer)

	if a == b {
		t.Errorf("distinct args returned the same cached value %v", a)
	}
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
}

func TestGetOrFetch_ErrorNotCached(t *testing.T) {
	c := New()

	calls := 0
	failing := func() (any, error) {
		calls++
		return nil, errors.New("boom")
	}

	if _, err := c.GetOrFetch("m", "a", failing); err == nil {
		t.Fatal("expected error from producer")
	}
	if _, err := c.GetOrFetch("m", "a", failing); err == nil {
		t.Fatal("expected error from producer on second call")
	}

	if calls != 2 {
		t.Errorf("producer called %d times, want 2 (errors must not be cached)", calls)
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestInvalidate_DropsAllArgsForMethod(t *testing.T) {
	c := New()

	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	c.GetOrFetch("zaken.RetrieveCaseDetails", "123456782/ZAAK-001", producer)
	c.GetOrFetch("zaken.RetrieveCaseDetails", "123456782/ZAAK-002", producer)
	c.GetOrFetch("zaken.ListRelatedCases", "123456782/ZAAK-001", producer)

	// Invalidation is whole-method: both case entries go, the other
	// method's entry stays.
	c.Invalidate("zaken.RetrieveCaseDetails")

	if c.Size() != 1 {
		t.Fatalf("Size() after Invalidate = %d, want 1", c.Size())
	}

	got, err := c.GetOrFetch("zaken.RetrieveCaseDetails", "123456782/ZAAK-001", producer)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("GetOrFetch after Invalidate = %v, want refetched value 4", got)
	}
}

func TestInvalidate_MissingMethodIsNoop(t *testing.T) {
	c := New()
	c.Invalidate("never-stored")

	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestGetOrFetch_StaleEntryRefetched(t *testing.T) {
	c := NewWithMaxAge(time.Minute)

	current := time.Now()
	c.now = func() time.Time { return current }

	calls := 0
	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrFetch("m", "a", producer); err != nil {
		t.Fatal(err)
	}

	current = current.Add(2 * time.Minute)

	got, err := c.GetOrFetch("m", "a", producer)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("GetOrFetch on stale entry = %v, want 2", got)
	}
}
