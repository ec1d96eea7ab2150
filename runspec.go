package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/chriswald/bfgo/interp"
)

// RunSpec models a run-spec yaml file. Flags set explicitly on the
// command line win over file values.
type RunSpec struct {
	MemoryWords int    `yaml:"memory_words"`
	Stdin       string `yaml:"stdin"`
	Quiet       bool   `yaml:"quiet"`
	HTML        bool   `yaml:"html"`
}

func DefaultRunSpec() *RunSpec {
	return &RunSpec{MemoryWords: interp.DefaultMemoryWords}
}

// LoadRunSpec parses a run-spec file. Unknown keys are an error.
func LoadRunSpec(path string) (*RunSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	spec := DefaultRunSpec()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(spec); err != nil {
		return nil, fmt.Errorf("runspec: parse %s: %w", path, err)
	}
	if spec.MemoryWords <= 0 {
		spec.MemoryWords = interp.DefaultMemoryWords
	}
	return spec, nil
}

// ApplyFlags overlays command-line values onto the spec for every flag
// the user actually set.
func (s *RunSpec) ApplyFlags(flags *pflag.FlagSet, memoryWords int, stdin string, quiet, html bool) {
	if flags.Changed("memory-words") {
		s.MemoryWords = memoryWords
	}
	if flags.Changed("in") {
		s.Stdin = stdin
	}
	if flags.Changed("quiet") {
		s.Quiet = quiet
	}
	if flags.Changed("html") {
		s.HTML = html
	}
}
