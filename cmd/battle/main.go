package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"dndbattle/internal/combat"
	"dndbattle/internal/config"
	"dndbattle/internal/logging"
	"dndbattle/internal/util"
)

func main() {
	var cfgDir, out, logLevel string
	var seed int64
	pflag.StringVar(&cfgDir, "config", "", "directory with classes.yaml / rules.yaml overrides")
	pflag.StringVar(&out, "out", "", "write the battle event log as JSON to this file")
	pflag.Int64Var(&seed, "seed", 0, "random seed (0 = fresh)")
	pflag.StringVar(&logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn, error")
	pflag.Parse()

	log, err := logging.New(logging.Config{Level: logging.Level(logLevel)})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	classes, rules, err := config.LoadAll(cfgDir)
	if err != nil {
		log.Fatal("load config", zap.String("dir", cfgDir), zap.Error(err))
	}

	if seed == 0 {
		seed = util.NewSeed()
	}
	log.Info("starting battle", zap.Int64("seed", seed), zap.String("config", cfgDir))

	env := &combat.Env{Rng: util.New(seed), Rules: rules}
	console := combat.NewConsole(os.Stdin, os.Stdout)
	game := combat.NewGame(env, classes, console, log)
	game.Record = out != ""

	res, err := game.Play()
	if err != nil {
		log.Fatal("console input", zap.Error(err))
	}

	if out != "" {
		if err := combat.SaveResult(out, res, seed); err != nil {
			log.Fatal("write battle log", zap.String("path", out), zap.Error(err))
		}
		log.Info("battle log saved", zap.String("path", out))
	}
}
