package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	var typesRaw string

	fs := pflag.NewFlagSet("gen-fake", pflag.ContinueOnError)
	fs.StringVarP(&typesRaw, "type", "t", "", "comma-separated type names to fake")
	fs.StringVarP(&cfg.Package, "package", "p", "", "target package path")
	fs.StringVarP(&cfg.Output, "output", "o", "fake_gen.go", "output file name (relative to the target package)")
	fs.BoolVarP(&cfg.Recursive, "recursive", "r", false, "also generate factories for referenced same-package types")
	fs.BoolVarP(&cfg.Watch, "watch", "w", false, "watch the package directory and regenerate on change")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	cfg.Types = splitCommaList(typesRaw)
	if len(cfg.Types) == 0 {
		return nil, errors.New("--type is required")
	}
	if strings.TrimSpace(cfg.Package) == "" {
		return nil, errors.New("--package is required")
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return nil, errors.New("--output must not be empty")
	}
	return cfg, nil
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
