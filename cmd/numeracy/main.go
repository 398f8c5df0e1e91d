// Package main provides the numeracy CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/born-ml/numeracy/internal/problem"
	"github.com/born-ml/numeracy/internal/serialization"
	"github.com/born-ml/numeracy/internal/tensor"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "numeracy %s - matrices and linear algebra\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version              Show version")
	fmt.Fprintln(w, "  run [-v] [-o OUT] FILE...")
	fmt.Fprintln(w, "                       Evaluate problem files (.toml, .yaml),")
	fmt.Fprintln(w, "                       optionally saving results to OUT (.safetensors)")
	fmt.Fprintln(w, "  show FILE            Print the tensors of a .safetensors file")
}

// run executes the command line and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "numeracy %s\n", version)
		return 0
	case "run":
		return runProblems(args[1:], stdout, stderr)
	case "show":
		return show(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func runProblems(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log each evaluation step")
	output := fs.String("o", "", "save results to a SafeTensors file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "run: no problem files given")
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	status := 0
	results := make(map[string]*tensor.Tensor[float64])
	for _, path := range fs.Args() {
		p, err := problem.Load(path)
		if err != nil {
			logger.Error("load failed", "file", path, "error", err)
			status = 1
			continue
		}

		res, err := p.Run(logger)
		if err != nil {
			logger.Error("evaluation failed", "file", path, "operation", p.Operation, "error", err)
			status = 1
			continue
		}

		logger.Info("solved", "file", path, "operation", p.Operation)
		fmt.Fprintf(stdout, "%s (%s):\n%s\n", p.Name, p.Operation, res)

		key := p.Name
		for n := 2; results[key] != nil; n++ {
			key = fmt.Sprintf("%s.%d", p.Name, n)
		}
		if key != p.Name {
			logger.Warn("duplicate problem name", "file", path, "name", p.Name, "saved_as", key)
		}
		if res.Tensor != nil {
			results[key] = res.Tensor
		} else {
			results[key] = tensor.FromScalar(res.Scalar)
		}
	}

	if *output != "" && len(results) > 0 {
		meta := map[string]string{"generator": "numeracy " + version}
		if err := serialization.Save(*output, results, meta); err != nil {
			logger.Error("save failed", "file", *output, "error", err)
			return 1
		}
		logger.Info("saved results", "file", *output, "tensors", len(results))
	}
	return status
}

func show(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "show: expected one file")
		return 2
	}

	tensors, meta, err := serialization.Load[float64](args[0])
	if err != nil {
		fmt.Fprintf(stderr, "show: %v\n", err)
		return 1
	}
	if g, ok := meta["generator"]; ok {
		fmt.Fprintf(stdout, "# %s\n", g)
	}
	for _, name := range slices.Sorted(maps.Keys(tensors)) {
		t := tensors[name]
		fmt.Fprintf(stdout, "%s %v:\n%s\n", name, t.Shape(), t)
	}
	return 0
}
