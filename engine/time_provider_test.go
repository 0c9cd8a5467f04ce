package engine

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms between readings, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	if !mock.Now().Equal(epoch) {
		t.Errorf("Expected start %v, got %v", epoch, mock.Now())
	}

	if got := mock.Advance(200 * time.Millisecond); !got.Equal(epoch.Add(200 * time.Millisecond)) {
		t.Errorf("Advance returned %v", got)
	}

	mock.SetTime(epoch.Add(-time.Hour))
	if !mock.Now().Equal(epoch.Add(-time.Hour)) {
		t.Errorf("SetTime backwards not honored, got %v", mock.Now())
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := epoch.Add(200 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, mock.Now())
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
