package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/boardsim/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App whose report and log output are captured.
// Setting BOARDSIM_TEST_LOGS=true dumps the log when the test ends.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "json"
	testApp := NewApp(outBuffer, logBuffer, appConfig, loader)

	t.Cleanup(func() {
		if os.Getenv("BOARDSIM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
