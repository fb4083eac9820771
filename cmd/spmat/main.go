// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat"
	"github.com/katalvlaran/sparsemat/export"
	"github.com/katalvlaran/sparsemat/solve"
	"github.com/katalvlaran/sparsemat/vec"
)

var (
	// Global flags.
	engine string

	// eye flags.
	eyeSize int
	eyePBM  bool

	// solve flags.
	solveSize    int
	solveTol     float64
	solveMaxIter int
)

// rootCmd is the base command; every action lives in a subcommand.
var rootCmd = &cobra.Command{
	Use:   "spmat",
	Short: "spmat - sparse matrix playground",
	Long: `spmat builds small demonstration systems on top of the sparsemat
engines, exports them as text or PBM bitmaps, and runs the conjugate
gradient solver against them.`,
	SilenceUsage: true,
}

// eyeCmd prints an identity matrix in the requested export format.
var eyeCmd = &cobra.Command{
	Use:   "eye",
	Short: "Export an identity matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildEye(engine, eyeSize)
		if err != nil {
			return err
		}
		if eyePBM {
			return export.WritePBM(cmd.OutOrStdout(), m)
		}
		return export.WriteRows(cmd.OutOrStdout(), m)
	},
}

// solveCmd assembles the 1-D Poisson system and runs conjugate gradient.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a 1-D Poisson system with conjugate gradient",
	RunE: func(cmd *cobra.Command, args []string) error {
		if solveSize < 1 {
			return fmt.Errorf("spmat: system size must be positive, got %d", solveSize)
		}
		m := poisson1D(solveSize)

		b := vec.New[float64](solveSize)
		for i := 0; i < solveSize; i++ {
			b.Set(i, 1.0)
		}
		x := vec.FromSlice(make([]float64, solveSize))

		cg := solve.NewCG[float64](
			solve.WithTolerance(solveTol),
			solve.WithMaxIterations(solveMaxIter),
		)
		stats, err := cg.Solve(m, b, x)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "converged=%t iterations=%d residual=%.3e\n",
			stats.Converged, stats.Iterations, stats.Residual)
		for i := 0; i < x.Dim(); i++ {
			fmt.Fprintf(out, "x[%d] = %.6f\n", i, x.Get(i))
		}
		return nil
	},
}

// buildEye allocates an n-by-n identity on the engine named by flag.
func buildEye(engine string, n int) (sparsemat.Matrix[float64], error) {
	if n < 1 {
		return nil, fmt.Errorf("spmat: matrix size must be positive, got %d", n)
	}
	switch engine {
	case "list":
		return sparsemat.EyeList[float64, uint32](n), nil
	case "crs":
		return sparsemat.EyeCRS[float64, uint32](n), nil
	case "rowvec":
		return sparsemat.EyeRowVec[float64, uint32](n), nil
	default:
		return nil, fmt.Errorf("spmat: unknown engine %q (want list, crs or rowvec)", engine)
	}
}

// poisson1D builds the classic tridiagonal [-1 2 -1] stencil, which is
// symmetric positive definite for any n >= 1.
func poisson1D(n int) *sparsemat.ListMat[float64, uint32] {
	m := sparsemat.NewListMat[float64, uint32](3 * n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 2.0)
		if i > 0 {
			m.Set(i, i-1, -1.0)
		}
		if i < n-1 {
			m.Set(i, i+1, -1.0)
		}
	}
	return m
}

func init() {
	rootCmd.PersistentFlags().StringVar(&engine, "engine", "list",
		"matrix engine to build on (list, crs, rowvec)")

	eyeCmd.Flags().IntVarP(&eyeSize, "size", "n", 5, "matrix dimension")
	eyeCmd.Flags().BoolVar(&eyePBM, "pbm", false, "emit a PBM bitmap instead of text rows")

	solveCmd.Flags().IntVarP(&solveSize, "size", "n", 10, "system dimension")
	solveCmd.Flags().Float64Var(&solveTol, "tol", solve.DefaultTolerance,
		"residual norm tolerance")
	solveCmd.Flags().IntVar(&solveMaxIter, "max-iter", solve.DefaultMaxIterations,
		"iteration cap")

	rootCmd.AddCommand(eyeCmd, solveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
