// Package config parses CLI flags and optional YAML defaults into the
// thresholds that drive the discovery engine.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Control-flow sentinels, mirroring how llmcmd's cli package distinguishes
// "stop and print something" from "stop, something is wrong".
var (
	ErrShowHelp = errors.New("show help")
)

// Thresholds are the four numeric knobs described in spec §3. They are
// immutable once a run starts.
type Thresholds struct {
	FreqThr     uint    // minimum frequency for a candidate to survive
	FirmnessThr float64 // minimum cohesion score
	DFThr       float64 // minimum degree of freedom (neighbor entropy)
	MaxWordLen  uint    // maximum candidate length in characters
}

// Config is the fully resolved set of inputs for one run.
type Config struct {
	File       string // required input file path
	ConfigFile string // optional YAML defaults file
	Thresholds Thresholds
}

// defaultsFile is the shape of an optional YAML defaults document. Any field
// left unset keeps the built-in default; flags always win over the file.
type defaultsFile struct {
	Freq    *uint    `yaml:"freq"`
	Firm    *float64 `yaml:"firm"`
	DF      *float64 `yaml:"df"`
	WordLen *uint    `yaml:"wordlen"`
}

// ParseArgs parses argv (excluding the program name) into a Config.
//
// Flags with a YAML defaults file present are layered: the file supplies
// defaults, flags supply overrides, exactly as if the file's values had
// been passed as flag defaults to begin with.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("newwords", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var help bool
	fs.BoolVar(&help, "help", false, "show usage")
	fs.BoolVar(&help, "h", false, "show usage")

	var file string
	fs.StringVar(&file, "file", "", "the corpus file to process (required)")
	fs.StringVar(&file, "f", "", "the corpus file to process (required)")

	var cfgPath string
	fs.StringVar(&cfgPath, "config", "", "optional YAML file of threshold defaults")

	defaults := Thresholds{FreqThr: 3, FirmnessThr: 350.0, DFThr: 2.0, MaxWordLen: 4}

	// A config file changes the *defaults* flags fall back to, so it must be
	// read before the flag definitions below capture their default values.
	if p := peekConfigFlag(args); p != "" {
		d, err := loadDefaultsFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", p, err)
		}
		applyDefaultsFile(&defaults, d)
	}

	var freq uint
	fs.UintVar(&freq, "freq", defaults.FreqThr, "minimum frequency")

	var firm float64
	fs.Float64Var(&firm, "firm", defaults.FirmnessThr, "minimum cohesion (firmness)")

	var df float64
	fs.Float64Var(&df, "df", defaults.DFThr, "minimum degree of freedom")

	var wordlen uint
	fs.UintVar(&wordlen, "wordlen", defaults.MaxWordLen, "maximum candidate length")
	fs.UintVar(&wordlen, "l", defaults.MaxWordLen, "maximum candidate length")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if help {
		fs.Usage()
		return nil, ErrShowHelp
	}

	if file == "" {
		return nil, fmt.Errorf("missing required argument: --file")
	}
	if wordlen < 1 {
		return nil, fmt.Errorf("--wordlen must be >= 1, got %d", wordlen)
	}

	return &Config{
		File:       file,
		ConfigFile: cfgPath,
		Thresholds: Thresholds{
			FreqThr:     freq,
			FirmnessThr: firm,
			DFThr:       df,
			MaxWordLen:  wordlen,
		},
	}, nil
}

// peekConfigFlag scans args for --config/-config without disturbing the
// main FlagSet, since the config file must be consulted before the flags
// that it can override are registered with their final defaults.
func peekConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}

func loadDefaultsFile(path string) (*defaultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d defaultsFile
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func applyDefaultsFile(t *Thresholds, d *defaultsFile) {
	if d.Freq != nil {
		t.FreqThr = *d.Freq
	}
	if d.Firm != nil {
		t.FirmnessThr = *d.Firm
	}
	if d.DF != nil {
		t.DFThr = *d.DF
	}
	if d.WordLen != nil {
		t.MaxWordLen = *d.WordLen
	}
}

// EchoArgs renders argv the way the original implementation echoed invalid
// option sets back to the user before printing usage.
func EchoArgs(args []string) string {
	return strings.Join(args, " ")
}
