package cli

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/seitarof/gen-fake/internal/generator"
	"github.com/seitarof/gen-fake/internal/inspector"
)

// Runner orchestrates the inspector/synthesizer/generator layers. It does no
// semantic work of its own: declarations go in, a generated file comes out.
type Runner interface {
	Run(ctx context.Context, cfg *Config) error
}

type runnerImpl struct {
	inspector inspector.Inspector
	synth     generator.Synthesizer
	generator generator.Generator
	log       *zap.Logger
}

// NewRunner creates a default runner implementation.
func NewRunner(
	i inspector.Inspector,
	s generator.Synthesizer,
	g generator.Generator,
	log *zap.Logger,
) Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &runnerImpl{inspector: i, synth: s, generator: g, log: log}
}

// Run executes one generation cycle, then optionally keeps watching the
// package directory for changes.
func (r *runnerImpl) Run(ctx context.Context, cfg *Config) error {
	dir, err := r.generate(cfg)
	if err != nil {
		return err
	}
	if cfg.Watch {
		return r.watch(ctx, cfg, dir)
	}
	return nil
}

func (r *runnerImpl) generate(cfg *Config) (string, error) {
	seen := map[string]bool{}
	decls := []*inspector.Declaration{}

	for _, typeName := range cfg.Types {
		batch, err := r.inspectOne(cfg, typeName)
		if err != nil {
			return "", errors.Wrapf(err, "inspect %q", typeName)
		}
		for _, d := range batch {
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			decls = append(decls, d)
		}
	}
	if len(decls) == 0 {
		return "", errors.Newf("no declarations found for %v in %q", cfg.Types, cfg.Package)
	}

	dir := decls[0].Dir
	cfg.resolveOutput(dir)

	plans := make([]*generator.FakePlan, 0, len(decls))
	for _, d := range decls {
		plan := r.synth.Plan(d)
		r.log.Debug("planned factory",
			zap.String("type", d.Name),
			zap.Int("params", len(plan.Params)),
			zap.Int("helpers", len(plan.Helpers)))
		plans = append(plans, plan)
	}

	if err := r.generator.Generate(cfg, plans); err != nil {
		return "", err
	}
	r.log.Info("generated",
		zap.String("file", cfg.OutputFilename()),
		zap.Int("factories", len(plans)))
	return dir, nil
}

func (r *runnerImpl) inspectOne(cfg *Config, typeName string) ([]*inspector.Declaration, error) {
	if cfg.Recursive {
		return r.inspector.InspectRecursive(cfg.Package, typeName)
	}
	decl, err := r.inspector.Inspect(cfg.Package, typeName)
	if err != nil {
		return nil, err
	}
	return []*inspector.Declaration{decl}, nil
}
