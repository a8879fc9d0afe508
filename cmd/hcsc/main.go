// Command hcsc compiles a HackerScript (.hcs) source file to a
// native binary by lowering it to C and handing the result to the
// system C compiler.
package main

import (
	"flag"
	"fmt"
	"os"

	hcsc "github.com/HackerOS-Linux-System/HackerScript"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hcsc", flag.ContinueOnError)
	output := fs.String("o", "", "output binary path (default: input file's basename without its extension)")
	logLevel := fs.String("log-level", "", "DEBUG, WARN, or ERROR (default: $HCSC_LOG, else WARN)")
	keepTemp := fs.Bool("keep-temp", false, "keep the generated C source instead of deleting it")
	ccPath := fs.String("cc", "cc", "C compiler to invoke")
	includeDir := fs.String("I", "", "extra include directory passed to the C compiler")
	libDir := fs.String("L", "", "extra library directory passed to the C compiler")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hcsc [flags] <input.hcs>")
		return 2
	}

	input := fs.Arg(0)
	out := *output
	if out == "" {
		out = hcsc.DefaultOutputPath(input)
	}

	cfg := hcsc.NewConfig()
	cfg.SetBool("driver.keep_temp_file", *keepTemp)
	cfg.SetString("driver.cc", *ccPath)
	cfg.SetString("driver.include_dir", *includeDir)
	cfg.SetString("driver.lib_dir", *libDir)

	logger := hcsc.NewLogger(*logLevel)

	if err := hcsc.Compile(input, hcsc.CompileOptions{
		OutputPath: out,
		Config:     cfg,
		Logger:     logger,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "hcsc:", err)
		return 1
	}
	return 0
}
