package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Iron-Ham/taskmemo/internal/calc"
	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc <count>",
	Short: "Run the expensive calculation once",
	Long: `Run the expensive calculation for count outside the TUI and print the
result with its wall time.

The iteration count comes from calc.iterations unless --iterations is given.
A negative count must follow --, as in: taskmemo calc -- -2`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

var calcIterations int

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().IntVar(&calcIterations, "iterations", 0, "loop iterations (default from calc.iterations)")
	calcCmd.SetFlagErrorFunc(calcFlagError)
}

// calcFlagError points at -- when a negative count was parsed as a flag.
// pflag reports those as "unknown shorthand flag: '2' in -2".
func calcFlagError(cmd *cobra.Command, err error) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown shorthand flag") {
		return err
	}
	_, arg, ok := strings.Cut(msg, " in ")
	if !ok {
		return err
	}
	if _, convErr := strconv.Atoi(arg); convErr != nil {
		return err
	}
	return fmt.Errorf("%w\nPass negative counts after --: taskmemo calc -- %s", err, arg)
}

func runCalc(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[0], err)
	}

	iterations := calcIterations
	if iterations <= 0 {
		iterations = config.Get().Calc.Iterations
	}

	calculator := calc.NewCalculator(calc.WithIterations(iterations))
	start := time.Now()
	result := calculator.Value(count)
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Memoized calculation result: %d\n", result)
	fmt.Fprintf(out, "Iterations: %d (%s)\n", calculator.Iterations(), elapsed.Round(time.Millisecond))
	return nil
}
