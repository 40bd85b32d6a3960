package cli

import "path/filepath"

// Config stores CLI options for a single generation run.
type Config struct {
	Types       []string
	Package     string
	Output      string
	Recursive   bool
	Watch       bool
	Verbose     bool
	ShowVersion bool

	// resolvedOutput is the absolute output path once the target package
	// directory is known.
	resolvedOutput string
}

// OutputFilename returns the destination file path for the generator layer.
func (c *Config) OutputFilename() string {
	if c.resolvedOutput != "" {
		return c.resolvedOutput
	}
	return c.Output
}

func (c *Config) resolveOutput(pkgDir string) {
	if filepath.IsAbs(c.Output) {
		c.resolvedOutput = c.Output
		return
	}
	c.resolvedOutput = filepath.Join(pkgDir, c.Output)
}
