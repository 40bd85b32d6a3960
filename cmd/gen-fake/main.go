package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seitarof/gen-fake/internal/cli"
	"github.com/seitarof/gen-fake/internal/generator"
	"github.com/seitarof/gen-fake/internal/inspector"
	"github.com/seitarof/gen-fake/internal/resolver"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	logger := newLogger(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck

	i := inspector.New(logger)
	res := resolver.New(resolver.DefaultRules()...)
	s := generator.NewSynthesizer(res)
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := cli.NewRunner(i, s, g, logger)
	if err := runner.Run(ctx, cfg); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	return logger
}
