package main

import (
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"

	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/bindings"
	"github.com/wippyai/webidl-runtime/buffer"
	"github.com/wippyai/webidl-runtime/gojabridge"
)

// report is the outcome of a single probe.
type report struct {
	err     error
	input   string
	source  string
	data    []byte
	offset  uint32
	length  uint32
	isKey   bool
	isIndex bool
}

type prober struct {
	vm      *goja.Runtime
	bridge  *gojabridge.Bridge
	timeout time.Duration
	mu      sync.Mutex
}

func newProber(cfg *config) (*prober, error) {
	vm := goja.New()
	br, err := gojabridge.New(vm)
	if err != nil {
		return nil, err
	}
	br.Copier = bindings.Copier{Allocator: buffer.HeapAllocator{MaxBytes: uint32(cfg.MaxAlloc)}}
	return &prober{vm: vm, bridge: br, timeout: cfg.evalTimeout()}, nil
}

// run dispatches an interactive line: "key <name>" classifies a literal
// key, anything else is evaluated as a buffer source expression.
func (p *prober) run(line string) report {
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, "key "); ok {
		return p.key(rest)
	}
	return p.source(line)
}

func (p *prober) key(name string) report {
	return report{
		input:   name,
		isKey:   true,
		isIndex: bindings.IsArrayIndex(webidl.StringKey(name)),
	}
}

func (p *prober) source(expr string) report {
	r := report{input: expr}

	p.mu.Lock()
	defer p.mu.Unlock()

	v, err := p.eval(expr)
	if err != nil {
		r.err = err
		return r
	}

	src, err := p.bridge.Source(v)
	if err != nil {
		r.err = err
		return r
	}
	_, r.offset, r.length, _ = webidl.Window(src)
	r.source = webidl.SourceName(src)
	r.data, r.err = p.bridge.Copier.CopyDetailed(src)
	return r
}

func (p *prober) eval(expr string) (goja.Value, error) {
	if p.timeout > 0 {
		t := time.AfterFunc(p.timeout, func() {
			p.vm.Interrupt("evaluation timed out")
		})
		defer p.vm.ClearInterrupt()
		defer t.Stop()
	}
	return p.vm.RunString(expr)
}
