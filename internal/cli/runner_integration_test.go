package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/seitarof/gen-fake/internal/generator"
	"github.com/seitarof/gen-fake/internal/inspector"
	"github.com/seitarof/gen-fake/internal/resolver"
)

func newPipelineRunner() Runner {
	return NewRunner(
		inspector.New(nil),
		generator.NewSynthesizer(resolver.New(resolver.DefaultRules()...)),
		generator.New(generator.NewGoimportsFormatter(), generator.NewFileWriter()),
		nil,
	)
}

func generateToTemp(t *testing.T, cfg *Config) string {
	t.Helper()

	cfg.Output = filepath.Join(t.TempDir(), "fake_gen.go")
	if err := newPipelineRunner().Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	b, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(b)
}

func TestRun_StructPipeline(t *testing.T) {
	got := generateToTemp(t, &Config{
		Types:   []string{"User"},
		Package: "github.com/seitarof/gen-fake/testdata/structbasic",
	})

	for _, want := range []string{
		"// Code generated by gen-fake. DO NOT EDIT.",
		"package structbasic",
		"func FakeUser(opts ...FakeUserOption) User {",
		"func FakeUserName(v string) FakeUserOption",
		"FakeProfile()",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Internal") {
		t.Fatalf("excluded field leaked into output:\n%s", got)
	}
}

func TestRun_AnnotatedPipeline(t *testing.T) {
	got := generateToTemp(t, &Config{
		Types:   []string{"Session"},
		Package: "github.com/seitarof/gen-fake/testdata/annotated",
	})

	for _, want := range []string{
		`"time"`,
		"func fakeSessionTokenDefault() string { return newToken() }",
		"fakeSessionExpiresAtDefault()",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_RecursivePipelineIsLeafFirst(t *testing.T) {
	got := generateToTemp(t, &Config{
		Types:     []string{"Root"},
		Package:   "github.com/seitarof/gen-fake/testdata/nested",
		Recursive: true,
	})

	leaf := strings.Index(got, "func FakeLeaf(")
	child := strings.Index(got, "func FakeChild(")
	root := strings.Index(got, "func FakeRoot(")
	if leaf < 0 || child < 0 || root < 0 {
		t.Fatalf("recursive run should emit every reachable factory:\n%s", got)
	}
	if !(leaf < child && child < root) {
		t.Fatalf("factories should be emitted leaf-first: leaf=%d child=%d root=%d", leaf, child, root)
	}
}

func TestRun_PipelineIsIdempotent(t *testing.T) {
	cfg := func() *Config {
		return &Config{
			Types:   []string{"Priority"},
			Package: "github.com/seitarof/gen-fake/testdata/enums",
		}
	}

	first := generateToTemp(t, cfg())
	second := generateToTemp(t, cfg())
	if !bytes.Equal([]byte(first), []byte(second)) {
		t.Fatal("repeated runs must produce byte-identical output")
	}
}

func TestRun_WatchStopsOnContextCancel(t *testing.T) {
	cfg := &Config{
		Types:   []string{"Priority"},
		Package: "github.com/seitarof/gen-fake/testdata/enums",
		Output:  filepath.Join(t.TempDir(), "fake_gen.go"),
		Watch:   true,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newPipelineRunner().Run(ctx, cfg) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after context cancellation")
	}
}
