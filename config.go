package hcsc

import "fmt"

// cfgVal holds one configuration entry; exactly one of the three
// fields is meaningful, tracked by kind so a caller asking for the
// wrong type fails loudly instead of silently reading a zero value.
type cfgVal struct {
	kind byte // 'b', 'i', or 's'
	b    bool
	i    int
	s    string
}

// Config is a small typed settings bag for the driver's knobs
// (temp-file retention, C compiler path, extra include/library
// directories), all read from the same map rather than a dedicated
// struct field apiece. The emitter's manual vs. automatic memory mode
// is not stored here; it comes from the source file's directive.
type Config struct {
	values map[string]*cfgVal
}

// NewConfig returns a Config with hcsc's defaults.
func NewConfig() *Config {
	c := &Config{values: map[string]*cfgVal{}}
	c.SetBool("driver.keep_temp_file", false)
	c.SetString("driver.cc", "cc")
	c.SetString("driver.include_dir", "")
	c.SetString("driver.lib_dir", "")
	return c
}

func (c *Config) SetBool(key string, v bool)     { c.values[key] = &cfgVal{kind: 'b', b: v} }
func (c *Config) SetInt(key string, v int)       { c.values[key] = &cfgVal{kind: 'i', i: v} }
func (c *Config) SetString(key string, v string) { c.values[key] = &cfgVal{kind: 's', s: v} }

func (c *Config) Bool(key string) bool {
	v := c.mustGet(key, 'b')
	return v.b
}

func (c *Config) Int(key string) int {
	v := c.mustGet(key, 'i')
	return v.i
}

func (c *Config) String(key string) string {
	v := c.mustGet(key, 's')
	return v.s
}

func (c *Config) mustGet(key string, kind byte) *cfgVal {
	v, ok := c.values[key]
	if !ok {
		panic(fmt.Sprintf("hcsc: config key %q is not set", key))
	}
	if v.kind != kind {
		panic(fmt.Sprintf("hcsc: config key %q is not a %c", key, kind))
	}
	return v
}
