// Wisp CLI - boots the runtime, registers native modules, and reports on the heap
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/wisp/config"
	"github.com/chazu/wisp/modules"
	"github.com/chazu/wisp/vm"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	trace := flag.Bool("trace", false, "Trace object allocation")
	configDir := flag.String("config", "", "Directory containing wisp.toml (default: walk up from cwd)")
	dump := flag.String("dump", "", "Write a heap snapshot to the given file")
	globals := flag.Bool("globals", false, "List global bindings and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wisp [options]\n\n")
		fmt.Fprintf(os.Stderr, "Boots the Wisp runtime with the built-in native modules.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wisp -globals           # List registered globals\n")
		fmt.Fprintf(os.Stderr, "  wisp -dump heap.cbor    # Write a heap snapshot\n")
		fmt.Fprintf(os.Stderr, "  wisp -trace -v          # Trace allocations verbosely\n")
	}
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	commonlog.Configure(cfg.Log.Verbosity, nil)

	vmInst := vm.NewVM()
	vmInst.TraceAllocs = cfg.VM.TraceAllocs || *trace
	modules.RegisterBuiltins(vmInst)

	if *verbose {
		fmt.Printf("Registered %d globals\n", len(vmInst.Globals))
	}

	if *globals {
		for _, name := range vmInst.GlobalNames() {
			val, _ := vmInst.LookupGlobal(name)
			fmt.Printf("%s = %s\n", name, val)
		}
		return
	}

	dumpPath := *dump
	if dumpPath == "" {
		dumpPath = cfg.SnapshotPath()
	}
	if dumpPath != "" {
		if err := writeSnapshot(vmInst, dumpPath, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	snap := vmInst.Snapshot()
	fmt.Printf("wisp VM: %d objects, %d globals, %d strings\n",
		len(snap.Objects), len(vmInst.Globals), snap.Strings)
}

// loadConfig resolves the runtime configuration: an explicit directory
// wins, otherwise walk up from the working directory, otherwise defaults.
func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.Load(dir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}

	cfg, err := config.FindAndLoad(cwd)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// writeSnapshot serializes the heap and writes it to path.
func writeSnapshot(vmInst *vm.VM, path string, verbose bool) error {
	data, err := vm.MarshalSnapshot(vmInst.Snapshot())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Wrote %d bytes to %s\n", len(data), path)
	}
	return nil
}
