// Command coord evaluates coordinate operations from the command line.
//
//	coord [flags] <command> args...
//
// Operands are given as pairs of numbers, read as (x, y) or, with -polar,
// as (r, θ) in radians. Run coord -h for the list of commands.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hnimtadd/planar/logger"
	"golang.org/x/text/language"
)

type config struct {
	Level string
	JSON  bool
	Polar bool
	Prec  int
	Lang  string
}

func parseFlags(args []string) (config, []string, error) {
	var cfg config
	fs := flag.NewFlagSet("coord", flag.ContinueOnError)
	fs.StringVar(&cfg.Level, "level", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.JSON, "json", false, "write logs as JSON")
	fs.BoolVar(&cfg.Polar, "polar", false, "read operand pairs as (r, θ)")
	fs.IntVar(&cfg.Prec, "prec", -1, "fraction digits in output, -1 for shortest")
	fs.StringVar(&cfg.Lang, "lang", "", "BCP 47 tag for localized number output")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: coord [flags] <command> args...")
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

func main() {
	cfg, args, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logType := logger.TypeText
	if cfg.JSON {
		logType = logger.TypeJSON
	}
	log := logger.New(logger.Options{Buffer: os.Stderr, Level: level, Type: logType})

	var tag language.Tag
	if cfg.Lang != "" {
		tag, err = language.Parse(cfg.Lang)
		if err != nil {
			log.Error("invalid language tag", "lang", cfg.Lang, "err", err)
			os.Exit(2)
		}
	}

	r := &runner{
		out:   os.Stdout,
		log:   log,
		polar: cfg.Polar,
		prec:  cfg.Prec,
		lang:  tag,
	}
	if err := r.run(args); err != nil {
		log.Error("command failed", "args", args, "err", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
