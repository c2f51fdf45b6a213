// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	cli "github.com/urfave/cli/v2"

	"github.com/katalvlaran/gomatrix/matrix"
	"github.com/katalvlaran/gomatrix/matrixreader"
)

// action is one command body instantiated for an element type.
type action[T matrix.Number] func(cctx *cli.Context, r *matrixreader.Reader[T], w io.Writer) error

var showCmd = &cli.Command{
	Name:      "show",
	Usage:     "print every matrix",
	ArgsUsage: "FILE",
	Action: func(cctx *cli.Context) error {
		return dispatch(cctx, 1, showMatrices[int64], showMatrices[float64])
	},
}

var traceCmd = &cli.Command{
	Name:      "trace",
	Usage:     "print trace and secondary diagonal sum of every matrix",
	ArgsUsage: "FILE",
	Action: func(cctx *cli.Context) error {
		return dispatch(cctx, 1, traceMatrices[int64], traceMatrices[float64])
	},
}

var detCmd = &cli.Command{
	Name:      "det",
	Usage:     "print the determinant of every 2x2 matrix",
	ArgsUsage: "FILE",
	Action: func(cctx *cli.Context) error {
		return dispatch(cctx, 1, detMatrices[int64], detMatrices[float64])
	},
}

var transposeCmd = &cli.Command{
	Name:      "transpose",
	Usage:     "print the transpose of every matrix",
	ArgsUsage: "FILE",
	Action: func(cctx *cli.Context) error {
		return dispatch(cctx, 1, transposeMatrices[int64], transposeMatrices[float64])
	},
}

var normCmd = &cli.Command{
	Name:      "norm",
	Usage:     "print the Frobenius norm of every matrix",
	ArgsUsage: "FILE",
	Action: func(cctx *cli.Context) error {
		return dispatch(cctx, 1, normMatrices[int64], normMatrices[float64])
	},
}

func foldCmd(op, usage string) *cli.Command {
	return &cli.Command{
		Name:      op,
		Usage:     usage,
		ArgsUsage: "FILE",
		Action: func(cctx *cli.Context) error {
			return dispatch(cctx, 1, foldMatrices[int64](op), foldMatrices[float64](op))
		},
	}
}

func swapCmd(name, indices, usage string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: indices + " FILE",
		Action: func(cctx *cli.Context) error {
			if err := requireArgs(cctx, 3); err != nil {
				return err
			}
			i, j, err := indexArgs(cctx)
			if err != nil {
				return err
			}

			return dispatch(cctx, 3, swapMatrices[int64](name, i, j), swapMatrices[float64](name, i, j))
		},
	}
}

// dispatch opens the last argument as the source and runs the action for the
// element type selected by --int.
func dispatch(cctx *cli.Context, nargs int, asInt action[int64], asFloat action[float64]) error {
	if err := requireArgs(cctx, nargs); err != nil {
		return err
	}
	if cctx.Bool("int") {
		return run(cctx, asInt)
	}

	return run(cctx, asFloat)
}

func requireArgs(cctx *cli.Context, nargs int) error {
	if cctx.NArg() != nargs {
		return fmt.Errorf("%s: want %d argument(s), got %d", cctx.Command.Name, nargs, cctx.NArg())
	}

	return nil
}

func run[T matrix.Number](cctx *cli.Context, act action[T]) error {
	path := cctx.Args().Get(cctx.NArg() - 1)

	var (
		r   *matrixreader.Reader[T]
		err error
	)
	if path == "-" {
		r, err = matrixreader.New[T](cctx.App.Reader, matrixreader.WithName("<stdin>"))
	} else {
		r, err = matrixreader.Open[T](path)
	}
	if err != nil {
		return err
	}
	defer r.Close()

	log.Debugf("%s: %s, N=%d", cctx.Command.Name, r.Name(), r.N())

	return act(cctx, r, cctx.App.Writer)
}

func renderOptions(cctx *cli.Context) []matrix.Option {
	return []matrix.Option{
		matrix.WithDelimiter(cctx.String("delim")),
		matrix.WithPrecision(cctx.Int("precision")),
	}
}

// each calls fn for every matrix with its 1-based position.
func each[T matrix.Number](r *matrixreader.Reader[T], fn func(k int, m *matrix.Dense[T]) error) error {
	k := 0
	for m, err := range r.All() {
		if err != nil {
			return err
		}
		k++
		if err = fn(k, m); err != nil {
			return err
		}
	}

	return nil
}

// printMatrix writes m, separated from the previous one by a blank line.
func printMatrix[T matrix.Number](cctx *cli.Context, w io.Writer, k int, m *matrix.Dense[T]) error {
	if k > 1 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := m.WriteToWith(w, renderOptions(cctx)...)

	return err
}

func showMatrices[T matrix.Number](cctx *cli.Context, r *matrixreader.Reader[T], w io.Writer) error {
	return each(r, func(k int, m *matrix.Dense[T]) error {
		return printMatrix(cctx, w, k, m)
	})
}

func transposeMatrices[T matrix.Number](cctx *cli.Context, r *matrixreader.Reader[T], w io.Writer) error {
	return each(r, func(k int, m *matrix.Dense[T]) error {
		return printMatrix(cctx, w, k, m.T())
	})
}

func traceMatrices[T matrix.Number](_ *cli.Context, r *matrixreader.Reader[T], w io.Writer) error {
	return each(r, func(k int, m *matrix.Dense[T]) error {
		tr, err := m.Trace()
		if err != nil {
			return fmt.Errorf("matrix %d: %w", k, err)
		}
		sd, err := m.SecondaryDiagonalSum()
		if err != nil {
			return fmt.Errorf("matrix %d: %w", k, err)
		}
		_, err = fmt.Fprintf(w, "%d: trace=%v secondary=%v\n", k, tr, sd)

		return err
	})
}

func detMatrices[T matrix.Number](_ *cli.Context, r *matrixreader.Reader[T], w io.Writer) error {
	return each(r, func(k int, m *matrix.Dense[T]) error {
		d, err := m.Determinant()
		if err != nil {
			return fmt.Errorf("matrix %d: %w", k, err)
		}
		_, err = fmt.Fprintf(w, "%d: det=%v\n", k, d)

		return err
	})
}

func normMatrices[T matrix.Number](_ *cli.Context, r *matrixreader.Reader[T], w io.Writer) error {
	return each(r, func(k int, m *matrix.Dense[T]) error {
		n, err := matrix.FrobeniusNorm[T](m)
		if err != nil {
			return fmt.Errorf("matrix %d: %w", k, err)
		}
		_, err = fmt.Fprintf(w, "%d: norm=%s\n", k, strconv.FormatFloat(n, 'g', -1, 64))

		return err
	})
}

func binaryOp[T matrix.Number](op string) func(a, b matrix.Matrix[T]) (*matrix.Dense[T], error) {
	switch op {
	case "add":
		return matrix.Add[T]
	case "sub":
		return matrix.Sub[T]
	case "mul":
		return matrix.Mul[T]
	case "hadamard":
		return matrix.Hadamard[T]
	default:
		panic("matrixcat: unknown binary operator " + strconv.Quote(op))
	}
}

func foldMatrices[T matrix.Number](op string) action[T] {
	f := binaryOp[T](op)

	return func(cctx *cli.Context, r *matrixreader.Reader[T], w io.Writer) error {
		var acc *matrix.Dense[T]
		err := each(r, func(k int, m *matrix.Dense[T]) error {
			if acc == nil {
				acc = m

				return nil
			}
			next, err := f(acc, m)
			if err != nil {
				return fmt.Errorf("%s: matrix %d: %w", op, k, err)
			}
			acc = next

			return nil
		})
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%s: %s holds no matrices", op, r.Name())
		}

		return printMatrix(cctx, w, 1, acc)
	}
}

func indexArgs(cctx *cli.Context) (int, int, error) {
	i, err := strconv.Atoi(cctx.Args().Get(0))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: first index: %w", cctx.Command.Name, err)
	}
	j, err := strconv.Atoi(cctx.Args().Get(1))
	if err != nil {
		return 0, 0, fmt.Errorf("%s: second index: %w", cctx.Command.Name, err)
	}

	return i, j, nil
}

func swapMatrices[T matrix.Number](name string, i, j int) action[T] {
	return func(cctx *cli.Context, r *matrixreader.Reader[T], w io.Writer) error {
		return each(r, func(k int, m *matrix.Dense[T]) error {
			var ok bool
			if name == "swap-rows" {
				ok = m.SwapRows(i, j)
			} else {
				ok = m.SwapCols(i, j)
			}
			if !ok {
				log.Warnf("%s: matrix %d: indices %d,%d out of range for %dx%d, left unchanged", name, k, i, j, m.Rows(), m.Cols())
			}

			return printMatrix(cctx, w, k, m)
		})
	}
}
