// cmd/unitgen/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

// run executes the generator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("unitgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to units.yaml")
	outPath := flags.String("out", "", "output .gen.go file path")

	// glog registers -v, -logtostderr, ... on flag.CommandLine.
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		if flags.Lookup(f.Name) == nil {
			flags.Var(f.Value, f.Name, f.Usage)
		}
	})

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: unitgen -spec <units.yaml> -out <file.gen.go>")
		return 2
	}

	if err := generate(*specPath, filepath.Clean(*outPath)); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// generate reads, validates and renders specPath into outPath.
func generate(specPath, outPath string) error {
	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("unitgen: read spec: %w", err)
	}

	spec, err := parseSpec(specBytes)
	if err != nil {
		return err
	}
	if err := validateSpec(&spec); err != nil {
		return err
	}
	glog.V(1).Infof("unitgen: %d dimensions from %s", len(spec.Dimensions), specPath)

	src, err := render(spec)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(outPath, src, 0o644); err != nil {
		return fmt.Errorf("unitgen: write %s: %w", outPath, err)
	}
	glog.V(1).Infof("unitgen: wrote %s (%d bytes)", outPath, len(src))
	return nil
}

func main() {
	code := run(os.Args[1:], os.Stderr)
	glog.Flush()
	os.Exit(code)
}
