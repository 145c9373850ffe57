package bindings

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/buffer"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	if Logger() == nil {
		t.Fatal("default logger is nil")
	}

	l := zap.NewExample()
	SetLogger(l)
	if Logger() != l {
		t.Error("Logger did not return the configured logger")
	}

	SetLogger(nil)
	if Logger() == nil || Logger() == l {
		t.Error("SetLogger(nil) should restore the no-op logger")
	}
}

func TestSetLogger_ConcurrentWithCopies(t *testing.T) {
	defer SetLogger(nil)

	ab := buffer.NewArrayBuffer(4)
	ab.Detach()
	src := webidl.RawBuffer{Buffer: ab}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			core, _ := observer.New(zapcore.DebugLevel)
			SetLogger(zap.New(core))
		}()
		go func() {
			defer wg.Done()
			if _, ok := GetBufferSourceCopy(src); ok {
				t.Error("detached copy reported bytes")
			}
		}()
	}
	wg.Wait()
}
