package core

import (
	"sync/atomic"
	"testing"
)

func stubExit(t *testing.T) chan int {
	t.Helper()
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		exit = osExit
		SetTerminalReset(nil)
	})
	return codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	codes := stubExit(t)
	HandleCrash(nil)
	select {
	case <-codes:
		t.Fatal("exit called for nil panic value")
	default:
	}
}

func TestGoRecoversAndResetsTerminal(t *testing.T) {
	codes := stubExit(t)
	var resets atomic.Int32
	SetTerminalReset(func() { resets.Add(1) })

	Go(func() { panic("boom") })

	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if resets.Load() != 1 {
		t.Errorf("terminal reset %d times, want 1", resets.Load())
	}

	// A second crash must not reset a terminal that is already gone
	HandleCrash("again")
	<-codes
	if resets.Load() != 1 {
		t.Errorf("terminal reset %d times after second crash", resets.Load())
	}
}
