package hcsc

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CompileOptions controls the parts of Compile that aren't derivable
// from the source file itself.
type CompileOptions struct {
	OutputPath string
	Config     *Config
	Logger     *log.Logger
}

// Compile runs the full pipeline — parse, collect, emit, link — on
// src read from inputPath, producing a native binary at
// opts.OutputPath. Everything up through Emit is pure; only this
// function touches the filesystem or spawns a process.
func Compile(inputPath string, opts CompileOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger("")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = NewConfig()
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		return MissingInputError{Path: inputPath, Err: err}
	}

	prog, err := ParseProgram(inputPath, src)
	if err != nil {
		logger.Printf("[ERROR] %s: %v", inputPath, err)
		return err
	}

	ct := Collect(prog)
	cSource := Emit(prog, ct)

	tmpFile, err := os.CreateTemp("", "hcsc-*.c")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	if !cfg.Bool("driver.keep_temp_file") {
		defer os.Remove(tmpPath)
	} else {
		logger.Printf("[DEBUG] kept generated source at %s", tmpPath)
	}

	if _, err := tmpFile.WriteString(cSource); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	args := buildCCArgs(cfg, tmpPath, opts.OutputPath)
	logger.Printf("[DEBUG] %s %s", cfg.String("driver.cc"), strings.Join(args, " "))

	cmd := exec.Command(cfg.String("driver.cc"), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		exitCode := -1
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		}
		full := append([]string{cfg.String("driver.cc")}, args...)
		return LinkError{Command: full, ExitCode: exitCode}
	}
	return nil
}

func buildCCArgs(cfg *Config, cPath, outPath string) []string {
	args := []string{cPath, "-o", outPath}
	if inc := cfg.String("driver.include_dir"); inc != "" {
		args = append(args, "-I"+inc)
	}
	if lib := cfg.String("driver.lib_dir"); lib != "" {
		args = append(args, "-L"+lib)
	}
	args = append(args, "-lcurl")
	return args
}

// DefaultOutputPath derives the default binary name from an input
// path: strip the directory and the .hcs extension.
func DefaultOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
