// Copyright 2025 The U-Index Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Uindexstat turns the raw statistics of u-index benchmark runs into a
// normalized comparison table and a multi-panel chart.
//
// Usage:
//
//	uindexstat [options] [label=]stats.json [more.json ...]
//
// Each input file holds the JSON record array emitted by the benchmark
// harness for one dataset variant (for example the human-genome,
// english, and proteins corpora). The optional label names the
// variant; otherwise the file stem is used. Per variant, uindexstat
// prints the normalized comparison table and writes plot-<variant>.svg
// and plot-<variant>.png figures.
//
// The expected query count, the panel set, and the axis limits can be
// overridden with a JSON config file; see evalchart.Config.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/u-index/uindex-eval/evalchart"
	"github.com/u-index/uindex-eval/evalfmt"
	"github.com/u-index/uindex-eval/evalproc"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: uindexstat [options] [label=]stats.json [more.json ...]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagConfig  = flag.String("config", "", "JSON config `file` (query count, panels, axis limits)")
	flagQueries = flag.Int("q", 0, "expected query `count` per run (0: config or default)")
	flagPanels  = flag.String("panels", "", "panel `preset`: default or memory")
	flagOut     = flag.String("out", "", "`directory` to write figures into")
	flagTable   = flag.Bool("table", true, "print the normalized comparison table")
	flagCSV     = flag.Bool("csv", false, "print the table in CSV form instead of text")
	flagHTML    = flag.Bool("html", false, "also write table-<variant>.html per variant")
	flagSVG     = flag.Bool("svg", true, "write SVG figures")
	flagPNG     = flag.Bool("png", true, "write PNG figures")
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	cfg, err := evalchart.LoadConfig(*flagConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	if *flagQueries != 0 {
		cfg.Queries = *flagQueries
	}
	if *flagPanels != "" {
		cfg.Preset = *flagPanels
		cfg.Panels = nil
	}
	if *flagOut != "" {
		cfg.OutDir = *flagOut
	}
	cfg.SVG = *flagSVG
	cfg.PNG = *flagPNG
	if err := cfg.ValidateAndDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	variants, err := evalfmt.ReadVariants(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot read input")
	}

	warn := evalproc.WarnFunc(func(format string, args ...interface{}) {
		log.Warn().Msgf(format, args...)
	})

	for _, v := range variants {
		t := evalproc.Derive(v.Table, cfg.Queries)
		t = evalproc.Normalize(t, warn)
		t = evalproc.Group(t, warn)

		if *flagTable {
			if len(variants) > 1 {
				fmt.Printf("%s:\n", v.Name)
			}
			var werr error
			if *flagCSV {
				werr = evalfmt.WriteCSV(os.Stdout, t)
			} else {
				werr = evalfmt.WriteTable(os.Stdout, t)
			}
			if werr != nil {
				log.Fatal().Err(werr).Msg("Cannot write table")
			}
		}
		if *flagHTML {
			path := filepath.Join(cfg.OutDir, "table-"+v.Name+".html")
			f, err := os.Create(path)
			if err != nil {
				log.Fatal().Err(err).Msg("Cannot write HTML table")
			}
			if err := evalfmt.WriteHTML(f, t); err != nil {
				f.Close()
				log.Fatal().Err(err).Msg("Cannot write HTML table")
			}
			if err := f.Close(); err != nil {
				log.Fatal().Err(err).Msg("Cannot write HTML table")
			}
		}

		if err := evalchart.Render(v.Name, t, cfg); err != nil {
			log.Fatal().Err(err).Str("variant", v.Name).Msg("Cannot render figure")
		}
		log.Info().Str("variant", v.Name).Int("configurations", len(t)).Msg("Report written")
	}
}
