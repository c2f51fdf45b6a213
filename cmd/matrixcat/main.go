// SPDX-License-Identifier: MIT

// Command matrixcat reads square matrices from a text file and prints them,
// their diagonal reductions, or the fold of a binary operator over all of them.
//
//	matrixcat [--log-level L] [--int] [--delim D] [--precision P] <command> [args] FILE
//
// FILE may be "-" for standard input.
package main

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log"
	cli "github.com/urfave/cli/v2"

	"github.com/katalvlaran/gomatrix/matrix"
)

var log = logging.Logger("matrixcat")

// subsystems whose level follows --log-level.
var subsystems = []string{"matrixcat", "matrixreader"}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		fmt.Fprintln(os.Stderr, "matrixcat:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "matrixcat"
	app.Usage = "print and combine square matrices read from text"
	app.HideVersion = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"MATRIXCAT_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "int",
			Usage: "parse elements as 64-bit integers instead of float64",
		},
		&cli.StringFlag{
			Name:  "delim",
			Value: matrix.DefaultDelimiter,
			Usage: "separator between rendered elements",
		},
		&cli.IntFlag{
			Name:  "precision",
			Value: matrix.DefaultPrecision,
			Usage: "fixed decimals for float output (-1 = shortest)",
		},
	}
	app.Before = func(cctx *cli.Context) error {
		lvl := cctx.String("log-level")
		for _, name := range subsystems {
			if err := logging.SetLogLevel(name, lvl); err != nil {
				return fmt.Errorf("--log-level %q: %w", lvl, err)
			}
		}
		if cctx.String("delim") == "" {
			return fmt.Errorf("--delim must be non-empty")
		}
		if cctx.Int("precision") < -1 {
			return fmt.Errorf("--precision must be >= -1")
		}

		return nil
	}
	app.Commands = []*cli.Command{
		showCmd,
		traceCmd,
		detCmd,
		transposeCmd,
		normCmd,
		foldCmd("add", "element-wise sum of all matrices"),
		foldCmd("sub", "left-to-right element-wise difference of all matrices"),
		foldCmd("mul", "left-to-right matrix product of all matrices"),
		foldCmd("hadamard", "element-wise product of all matrices"),
		swapCmd("swap-rows", "R1 R2", "exchange two rows of every matrix"),
		swapCmd("swap-cols", "C1 C2", "exchange two columns of every matrix"),
	}

	return app
}
