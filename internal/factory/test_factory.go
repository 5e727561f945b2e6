package factory

import (
	"time"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/mocks"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/matching"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage/memory"
	"github.com/HyunseokSon/Addicton-sub000/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, matching.DefaultOptions(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
