// Package main demonstrates the strand engine: arena-backed builders,
// views, and the text rewrite primitives built on them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/strand/internal/config"
	"github.com/dshills/strand/internal/engine/arena"
	"github.com/dshills/strand/internal/engine/sbuf"
	"github.com/dshills/strand/internal/engine/str"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var inputPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&inputPath, "file", "", "File to run the rewrite demo against")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("strand %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if inputPath != "" {
		cfg.Demo.Input = inputPath
	}

	a := arena.NewWithOptions(
		arena.WithRegionCapacity(cfg.Arena.RegionCapacity),
		arena.WithPoison(cfg.Arena.Poison),
	)
	defer a.Destroy()
	defer arena.Default().Destroy()

	greet(a)
	formatted(a)
	tokenize()
	sortedJoin(a)
	rewrite(a)

	if cfg.Demo.Input != "" {
		if err := rewriteFile(a, cfg.Demo.Input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	fmt.Printf("arena: %d region(s), %d/%d bytes used (%.0f%%)\n",
		a.NumRegions(), a.SizeInUse(), a.Capacity(), 100*a.Utilization())
	return 0
}

// greet builds a greeting incrementally in arena storage.
func greet(a *arena.Arena) {
	b := sbuf.New(sbuf.WithArena(a))
	b.AppendString("Hello, ")
	b.AppendString("Paul")
	fmt.Printf("greet: %s\n", b.View())
	b.Destroy()
}

// formatted shows exact-size formatted appends.
func formatted(a *arena.Arena) {
	b := sbuf.New(sbuf.WithArena(a))
	b.Printf("My name is %s.", "Paul")
	b.Printf(" I am %d years old and my favorite color is %s.", 33, "Orange")
	fmt.Printf("formatted: %s\n", b.View())
	b.Destroy()
}

// tokenize walks whitespace-separated tokens without allocating.
func tokenize() {
	message := str.FromString("   Hello there, \t you  .  ")
	delim := str.FromString(" \t")
	fmt.Printf("tokenize: [%s]\n", message)
	save := 0
	for {
		token := message.Tokenize(delim, &save)
		if len(token) == 0 {
			break
		}
		fmt.Printf("  token: [%s]\n", token)
	}
}

// sortedJoin sorts views and joins them through a fixed-storage builder,
// letting it promote once the list outgrows the stack array.
func sortedJoin(a *arena.Arena) {
	animals := []str.Str{
		str.FromString("dog"), str.FromString("fish"), str.FromString("cat"),
		str.FromString("monkey"), str.FromString("horse"), str.FromString("duck"),
		str.FromString("goose"), str.FromString("cow"), str.FromString("pig"),
		str.FromString("sheep"), str.FromString("donkey"),
	}
	str.Sort(animals)

	var fixed [16]byte
	b := sbuf.FromFixed(fixed[:], sbuf.WithArena(a))
	for i, animal := range animals {
		if i > 0 {
			b.AppendString(", ")
		}
		b.Append(animal)
	}
	fmt.Printf("sorted: %s (promoted=%v)\n", b.View(), !b.IsFixed())
	b.Destroy()
}

// rewrite demonstrates replace and splice round-tripping.
func rewrite(a *arena.Arena) {
	b := sbuf.New(sbuf.WithArena(a))
	b.AppendString("Hello, good morning, how are you?")
	b.Replace(str.FromString("good"), str.FromString("what a lovely"))
	b.Splice(-1, b.Len(), str.FromString("!")) // swap the trailing ? for !
	fmt.Printf("rewrite: %s\n", b.View())
	b.Destroy()
}

// rewriteFile reads a file into a builder and upper-cases the first line.
func rewriteFile(a *arena.Arena, path string) error {
	b := sbuf.New(sbuf.WithArena(a))
	defer b.Destroy()
	if err := b.ReadFile(path); err != nil {
		return err
	}
	view := b.View()
	nl := view.IndexByte('\n')
	if nl < 0 {
		nl = len(view)
	}
	view[:nl].ToUpper()
	fmt.Printf("file %s (%d bytes):\n%s\n", path, b.Len(), b.View())
	return nil
}
