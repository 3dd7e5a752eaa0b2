package cache

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestCache(ttl TTL) (*Cache, *time.Time) {
	c := New(ttl)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestMemoComputesOnceUntilInvalidated(t *testing.T) {
	c, _ := newTestCache(TTL{Sliding: 30 * time.Second, Absolute: time.Hour})

	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		val, hit, err := Memo(c, "k", compute)
		if err != nil {
			t.Fatalf("Memo: %v", err)
		}
		if val != "value" {
			t.Fatalf("unexpected value %q", val)
		}
		if wantHit := i > 0; hit != wantHit {
			t.Fatalf("call %d hit = %v, want %v", i, hit, wantHit)
		}
	}
	if calls != 1 {
		t.Fatalf("compute ran %d times, want 1", calls)
	}

	c.Invalidate("k")
	if _, hit, _ := Memo(c, "k", compute); hit {
		t.Fatalf("expected miss after invalidation")
	}
	if calls != 2 {
		t.Fatalf("compute ran %d times after invalidation, want 2", calls)
	}
}

func TestSlidingWindowResetsOnHit(t *testing.T) {
	c, now := newTestCache(TTL{Sliding: 30 * time.Second, Absolute: time.Hour})
	c.Set("k", 1, TTL{})

	// Keep touching the entry just inside the window; it must stay alive.
	for i := 0; i < 5; i++ {
		*now = now.Add(20 * time.Second)
		if _, ok := c.Get("k"); !ok {
			t.Fatalf("entry evicted while still being hit (step %d)", i)
		}
	}

	// Go quiet past the window; the entry must be gone.
	*now = now.Add(31 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("entry survived past sliding window without hits")
	}
}

func TestAbsoluteCeilingBoundsStaleness(t *testing.T) {
	c, now := newTestCache(TTL{Sliding: 30 * time.Second, Absolute: 2 * time.Minute})
	c.Set("k", 1, TTL{})

	// Constant traffic resets the sliding window but cannot outlive the ceiling.
	for i := 0; i < 11; i++ {
		*now = now.Add(12 * time.Second)
		c.Get("k")
	}
	if _, ok := c.Get("k"); ok {
		t.Fatalf("entry survived past absolute ceiling under constant traffic")
	}
}

func TestMemoDoesNotCacheErrors(t *testing.T) {
	c, _ := newTestCache(TTL{Sliding: time.Minute, Absolute: time.Hour})

	calls := 0
	boom := errors.New("boom")
	compute := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 42, nil
	}

	if _, _, err := Memo(c, "k", compute); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	val, hit, err := Memo(c, "k", compute)
	if err != nil || hit || val != 42 {
		t.Fatalf("second call = (%d, %v, %v), want (42, false, nil)", val, hit, err)
	}
}

func TestNilCacheAlwaysComputes(t *testing.T) {
	var c *Cache

	calls := 0
	compute := func() (int, error) {
		calls++
		return calls, nil
	}

	for i := 1; i <= 3; i++ {
		val, hit, err := Memo(c, "k", compute)
		if err != nil || hit {
			t.Fatalf("nil cache call %d = (%d, %v, %v)", i, val, hit, err)
		}
		if val != i {
			t.Fatalf("nil cache must recompute: got %d, want %d", val, i)
		}
	}
}

func TestConcurrentMemoLastWriterWins(t *testing.T) {
	c := New(TTL{Sliding: time.Minute, Absolute: time.Hour})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := Memo(c, "k", func() (string, error) { return "v", nil })
			if err != nil {
				t.Errorf("Memo: %v", err)
			}
		}()
	}
	wg.Wait()

	val, hit, err := Memo(c, "k", func() (string, error) { return "other", nil })
	if err != nil || !hit || val != "v" {
		t.Fatalf("post-race read = (%q, %v, %v), want (v, true, nil)", val, hit, err)
	}
}

func TestKeyShapes(t *testing.T) {
	day := time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC)
	cases := map[string]string{
		KeyVacancy("abc"):                   "vacancy:abc",
		KeyVacancy("Backend Engineer"):      "vacancy:Backend Engineer",
		KeyApplicant("jane"):                "applicant:jane",
		KeyEmployer("emp-1"):                "employer:emp-1",
		KeyApplication("app-1"):             "application:app-1",
		KeyApplicationsByApplicant("jane"):  "applications-by-applicant:jane",
		KeyApplicationsByDate(day):          "applications-by-date:2026-03-01",
		KeyArchivedVacancies("emp-1"):       "archived-vacancies:emp-1",
		KeyAllVacancies:                     "all-vacancies",
		KeyAllApplicants:                    "all-applicants",
		KeyAllApplications:                  "all-applications",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("key = %q, want %q", got, want)
		}
	}
}
