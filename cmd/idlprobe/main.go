package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/wippyai/webidl-runtime/bindings"
)

func main() {
	var (
		expr        = flag.String("e", "", "JavaScript expression yielding an ArrayBuffer, typed array or DataView")
		key         = flag.String("key", "", "Property key to classify as an array index")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := cfg.logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	bindings.SetLogger(log.Named("bindings"))

	if *expr == "" && *key == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: idlprobe -e '<js expression>'")
		fmt.Fprintln(os.Stderr, "       idlprobe -key <property key>")
		fmt.Fprintln(os.Stderr, "       idlprobe -i  (interactive mode)")
		printUsage(cfg, os.Stderr)
		os.Exit(1)
	}

	r := renderer{color: useColor(cfg.Color), hexWidth: cfg.HexWidth}

	p, err := newProber(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(p, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	failed := false
	if *key != "" {
		fmt.Print(r.report(p.key(*key)))
	}
	if *expr != "" {
		rep := p.source(*expr)
		fmt.Print(r.report(rep))
		failed = rep.err != nil
	}
	if failed {
		os.Exit(2)
	}
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
