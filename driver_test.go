package hcsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutputPathStripsExtension(t *testing.T) {
	assert.Equal(t, "build", DefaultOutputPath("build.hcs"))
	assert.Equal(t, "build", DefaultOutputPath("/some/dir/build.hcs"))
}

func TestBuildCCArgsAlwaysLinksCurl(t *testing.T) {
	cfg := NewConfig()
	args := buildCCArgs(cfg, "/tmp/out.c", "/tmp/out")
	assert.Contains(t, args, "-lcurl")
	assert.Contains(t, args, "/tmp/out.c")
	assert.Contains(t, args, "-o")
}

func TestBuildCCArgsIncludesSearchPaths(t *testing.T) {
	cfg := NewConfig()
	cfg.SetString("driver.include_dir", "/opt/include")
	cfg.SetString("driver.lib_dir", "/opt/lib")
	args := buildCCArgs(cfg, "/tmp/out.c", "/tmp/out")
	assert.Contains(t, args, "-I/opt/include")
	assert.Contains(t, args, "-L/opt/lib")
}

func TestConfigPanicsOnWrongType(t *testing.T) {
	cfg := NewConfig()
	cfg.SetBool("x", true)
	assert.Panics(t, func() { cfg.String("x") })
}

func TestConfigPanicsOnMissingKey(t *testing.T) {
	cfg := NewConfig()
	assert.Panics(t, func() { cfg.Bool("does.not.exist") })
}
