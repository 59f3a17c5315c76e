//go:build heapdebug

// Command heapdebug is diagnostic tooling around the heapgc collector: it
// drives a heap from the command line so its chunk tables and collection
// behavior can be inspected without writing a Go program. It is built on
// top of heapgc's public and debug (heapdebug-tagged) APIs only; it never
// reaches into package internals.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arenagc/heapgc"
	"gopkg.in/yaml.v2"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "inspect":
		err = inspectCmd(os.Args[2:])
	case "summary":
		err = summaryCmd(os.Args[2:])
	case "snapshot":
		err = snapshotCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "heapdebug:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: heapdebug <command> [flags]

commands:
  run -script <file>   replay alloc/drop/collect directives and print a trace
  inspect               print the current chunk tables
  summary               print a one-line metrics summary
  snapshot -out <file>  write the chunk tables as YAML`)
}

// run replays a script of one directive per line against a freshly
// constructed heap:
//
//	alloc <size>       allocate size bytes, print the returned offset
//	drop <index>       stop holding the index'th live allocation's address,
//	                    so a later collect is free to reclaim it
//	collect [mask]      run a collection; mask is a comma-separated subset
//	                    of mark,sweep,compact,free (default: all four)
//
// Blank lines and lines starting with # are ignored.
func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	script := fs.String("script", "", "path to a script file (required)")
	fs.Parse(args)
	if *script == "" {
		return fmt.Errorf("run: -script is required")
	}
	f, err := os.Open(*script)
	if err != nil {
		return err
	}
	defer f.Close()

	h, err := heapgc.NewHeap()
	if err != nil {
		return err
	}
	defer h.Dispose()

	var live []heapgc.Addr
	out := heapgc.Colorable(os.Stdout)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "alloc":
			size, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("run: bad alloc size %q: %w", fields[1], err)
			}
			addr, err := h.Alloc(size)
			if err != nil {
				return fmt.Errorf("run: alloc %d: %w", size, err)
			}
			live = append(live, addr)
			fmt.Fprintf(out, "alloc %d -> offset %d\n", size, addr)
		case "drop":
			idx, err := strconv.Atoi(fields[1])
			if err != nil || idx < 0 || idx >= len(live) {
				return fmt.Errorf("run: bad drop index %q", fields[1])
			}
			fmt.Fprintf(out, "drop live[%d] (offset %d)\n", idx, live[idx])
			live = append(live[:idx], live[idx+1:]...)
		case "collect":
			mask := heapgc.CollectAll
			if len(fields) > 1 {
				mask, err = parseMask(fields[1])
				if err != nil {
					return fmt.Errorf("run: %w", err)
				}
			}
			if err := h.Collect(mask); err != nil {
				return fmt.Errorf("run: collect: %w", err)
			}
			fmt.Fprintln(out, "collect", fields[1:])
		default:
			return fmt.Errorf("run: unknown directive %q", fields[0])
		}
	}
	heapgc.KeepAlive(h)
	return sc.Err()
}

func parseMask(spec string) (heapgc.CollectOption, error) {
	var mask heapgc.CollectOption
	for _, name := range strings.Split(spec, ",") {
		switch name {
		case "mark":
			mask |= heapgc.Mark
		case "sweep":
			mask |= heapgc.Sweep
		case "compact":
			mask |= heapgc.Compact
		case "free":
			mask |= heapgc.Free
		default:
			return 0, fmt.Errorf("unknown phase %q", name)
		}
	}
	return mask, nil
}

func inspectCmd(args []string) error {
	h, err := heapgc.NewHeap()
	if err != nil {
		return err
	}
	defer h.Dispose()
	h.PrintContents(heapgc.Colorable(os.Stdout))
	return nil
}

func summaryCmd(args []string) error {
	h, err := heapgc.NewHeap()
	if err != nil {
		return err
	}
	defer h.Dispose()
	h.PrintSummary(heapgc.Colorable(os.Stdout))
	return nil
}

// chunkSnapshot is the YAML-serializable shape snapshot writes; it mirrors
// Metrics rather than exposing package-internal chunk descriptors, which
// stay unexported.
type chunkSnapshot struct {
	Metrics heapgc.Metrics `yaml:"metrics"`
}

func snapshotCmd(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	out := fs.String("out", "", "path to write the YAML snapshot (required)")
	fs.Parse(args)
	if *out == "" {
		return fmt.Errorf("snapshot: -out is required")
	}

	h, err := heapgc.NewHeap()
	if err != nil {
		return err
	}
	defer h.Dispose()

	snap := chunkSnapshot{Metrics: h.Metrics()}
	b, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot: marshaling: %w", err)
	}
	return os.WriteFile(*out, b, 0o644)
}
