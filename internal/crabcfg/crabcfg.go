// Package crabcfg models a CRAB3 WMCore configuration as ordered sections of
// key/value declarations and serializes it to the Python file CRAB reads.
//
// Values are kept as already-formatted Python literals (see String, Quoted,
// Bool, Int, List) so serialization is a plain walk over the declarations.
package crabcfg

import (
	"fmt"
	"strconv"
	"strings"
)

const header = `# Auto-generated Python script
from WMCore.Configuration import Configuration
# from CRABClient.UserUtilities import config

config = Configuration()
`

// Value is a Python literal.
type Value string

// String returns a single-quoted Python string literal.
// The content is not escaped: record values are emitted verbatim.
func String(s string) Value {
	return Value("'" + s + "'")
}

// Quoted returns a double-quoted Python string literal.
func Quoted(s string) Value {
	return Value(`"` + s + `"`)
}

// Bool returns True or False.
func Bool(b bool) Value {
	if b {
		return "True"
	}
	return "False"
}

// Int returns a Python integer literal.
func Int(n int) Value {
	return Value(strconv.Itoa(n))
}

// List returns a Python list of single-quoted strings.
func List(items ...string) Value {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = string(String(item))
	}
	return Value("[" + strings.Join(quoted, ", ") + "]")
}

// Param is one `config.<Section>.<Key> = <Value>` declaration.
type Param struct {
	Key   string
	Value Value
}

// Section is a named configuration section.
type Section struct {
	Name   string
	Params []Param
}

// Config is an ordered list of sections.
type Config struct {
	Sections []*Section
}

// New creates an empty configuration.
func New() *Config {
	return &Config{}
}

// Section returns the named section, appending it when absent.
func (c *Config) Section(name string) *Section {
	if s := c.lookup(name); s != nil {
		return s
	}
	s := &Section{Name: name}
	c.Sections = append(c.Sections, s)
	return s
}

func (c *Config) lookup(name string) *Section {
	for _, s := range c.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Set appends a declaration and returns the section for chaining.
func (s *Section) Set(key string, v Value) *Section {
	s.Params = append(s.Params, Param{Key: key, Value: v})
	return s
}

// Get returns the value declared for key.
func (s *Section) Get(key string) (Value, bool) {
	if i := s.index(key); i >= 0 {
		return s.Params[i].Value, true
	}
	return "", false
}

func (s *Section) index(key string) int {
	for i, p := range s.Params {
		if p.Key == key {
			return i
		}
	}
	return -1
}

// InsertAfter places a declaration directly after the first declaration of
// anchor. Repeated inserts after the same anchor therefore end up in
// reverse call order.
func (s *Section) InsertAfter(anchor, key string, v Value) error {
	i := s.index(anchor)
	if i < 0 {
		return fmt.Errorf("section %s has no %s declaration", s.Name, anchor)
	}
	s.Params = append(s.Params, Param{})
	copy(s.Params[i+2:], s.Params[i+1:])
	s.Params[i+1] = Param{Key: key, Value: v}
	return nil
}

// Render serializes the configuration.
func (c *Config) Render() string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, s := range c.Sections {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "config.section_(%q)\n", s.Name)
		for _, p := range s.Params {
			fmt.Fprintf(&sb, "config.%s.%s = %s\n", s.Name, p.Key, p.Value)
		}
	}
	return sb.String()
}
