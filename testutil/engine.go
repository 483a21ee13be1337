package testutil

import (
	"sync"

	"github.com/fahadshabir/poster/engine"
)

// FakeEngine is a scriptable engine.Engine for testing the batch harness
// without libpostal. Behavior is controlled through the Func fields; call
// counters allow verifying which elements reached the engine.
type FakeEngine struct {
	mu sync.Mutex

	// Scripted behavior. A nil ExpandFunc yields zero expansions; a nil
	// ParseFunc yields zero components.
	ExpandFunc func(text string) []string
	ParseFunc  func(text string) []engine.Component

	// Setup failure injection
	SetupCoreErr       error
	SetupClassifierErr error
	SetupParserErr     error

	// Call counts for verification
	SetupCalls    int
	TeardownCalls int
	ExpandCalls   int
	ParseCalls    int
}

// NewFakeEngine creates a fake engine with default no-op behavior.
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{}
}

// SetupCore implements engine.Engine.
func (f *FakeEngine) SetupCore() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetupCalls++
	return f.SetupCoreErr
}

// SetupLanguageClassifier implements engine.Engine.
func (f *FakeEngine) SetupLanguageClassifier() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetupCalls++
	return f.SetupClassifierErr
}

// SetupParser implements engine.Engine.
func (f *FakeEngine) SetupParser() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetupCalls++
	return f.SetupParserErr
}

// Teardown implements engine.Engine.
func (f *FakeEngine) Teardown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TeardownCalls++
}

// DefaultExpandOptions implements engine.Engine.
func (f *FakeEngine) DefaultExpandOptions() engine.ExpandOptions {
	return engine.ExpandOptions{}
}

// DefaultParseOptions implements engine.Engine.
func (f *FakeEngine) DefaultParseOptions() engine.ParseOptions {
	return engine.ParseOptions{}
}

// Expand implements engine.Engine.
func (f *FakeEngine) Expand(text string, _ engine.ExpandOptions) []string {
	f.mu.Lock()
	f.ExpandCalls++
	fn := f.ExpandFunc
	f.mu.Unlock()

	if fn == nil {
		return nil
	}
	return fn(text)
}

// Parse implements engine.Engine.
func (f *FakeEngine) Parse(text string, _ engine.ParseOptions) []engine.Component {
	f.mu.Lock()
	f.ParseCalls++
	fn := f.ParseFunc
	f.mu.Unlock()

	if fn == nil {
		return nil
	}
	return fn(text)
}

// EngineCalls returns the total number of Expand and Parse invocations.
func (f *FakeEngine) EngineCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ExpandCalls + f.ParseCalls
}
