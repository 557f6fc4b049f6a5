// This file implements the `quadruplets` subcommand: Miller-Rabin
// verification of the known (or user-supplied) prime quadruplet starts.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"q47/cmd/q47/ui"
	"q47/internal/primality"
	"q47/internal/verify"
)

var quadrupletsCmd = &cobra.Command{
	Use:   "quadruplets [n...]",
	Short: "Verify prime quadruplets of Q(n)",
	Long: `Verifies that Q(n), Q(n+1), Q(n+2), Q(n+3) are all probable primes
for each starting index. Without arguments the 14 quadruplets from the
2e9 survey are checked. Each candidate has roughly 400 decimal digits;
expect minutes, not seconds, at 25 rounds.`,
	RunE: runQuadruplets,
}

func runQuadruplets(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	starts := cfg.Starts(verify.KnownQuadrupletStarts)
	if len(args) > 0 {
		starts = make([]int64, 0, len(args))
		for _, a := range args {
			n, err := strconv.ParseInt(a, 10, 64)
			if err != nil || n < 2 {
				return fmt.Errorf("invalid starting index %q", a)
			}
			starts = append(starts, n)
		}
	}

	logger.Info("verifying quadruplets",
		zap.Int("count", len(starts)),
		zap.Int("rounds", cfg.Rounds),
		zap.Int("workers", cfg.Workers),
		zap.Float64("error_bound", primality.ErrorBound(cfg.Rounds)))

	cases, err := verify.Quadruplets(cmd.Context(), starts, cfg.Workers, testerFactory(cfg))
	if err != nil {
		return err
	}

	styles := ui.DefaultStyles()
	table := ui.NewTable("Prime quadruplet verification", "#", "n", "digits", "verdict")
	allValid := true
	for i, qc := range cases {
		verdict := styles.Pass.Render("PASS")
		if !qc.AllPrime {
			verdict = styles.Fail.Render("FAIL")
			allValid = false
		}
		table.AddRow(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", qc.Start),
			fmt.Sprintf("%d", qc.Members[0].Digits),
			verdict,
		)
	}
	fmt.Println(table.View(styles))

	if !allValid {
		for _, qc := range cases {
			for _, m := range qc.Members {
				if !m.ProbablePrime {
					logger.Warn("composite member", zap.Int64("n", m.N))
				}
			}
		}
		return fmt.Errorf("%d of %d quadruplets failed verification", countFailed(cases), len(cases))
	}

	fmt.Printf("All %d quadruplets verified (false-positive bound %.3g per candidate).\n",
		len(cases), primality.ErrorBound(cfg.Rounds))
	return nil
}

func countFailed(cases []verify.QuadrupletCase) int {
	failed := 0
	for _, qc := range cases {
		if !qc.AllPrime {
			failed++
		}
	}
	return failed
}
