// This file implements the `omega` subcommand: cross-checking the
// omega_Q(p) classification rule against direct root counting.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"q47/cmd/q47/ui"
	"q47/internal/series"
	"q47/internal/verify"
)

var omegaMax int

var omegaCmd = &cobra.Command{
	Use:   "omega",
	Short: "Cross-check the omega_Q(p) rule by brute force",
	Long: `For every prime p up to the bound, counts the roots of
Q(n) = 0 (mod p) directly and compares the count with the p mod 47 rule
(0 at the ramified prime 47, 46 when p = 1 mod 47, 0 otherwise).`,
	RunE: runOmega,
}

func init() {
	omegaCmd.Flags().IntVar(&omegaMax, "max", 300, "largest prime to check")
}

func runOmega(cmd *cobra.Command, args []string) error {
	logger.Info("verifying omega rule", zap.Int("max", omegaMax))

	report, err := verify.OmegaRule(cmd.Context(), omegaMax)
	if err != nil {
		return err
	}

	styles := ui.DefaultStyles()
	table := ui.NewTable(
		fmt.Sprintf("omega_Q(p) rule vs brute force, p <= %d", report.PMax),
		"p", "rule", "class",
	)
	primesShown := []uint64{2, 3, 5, 7, 11, 13, 47, 283}
	for _, p := range primesShown {
		if int(p) > report.PMax {
			continue
		}
		table.AddRow(fmt.Sprintf("%d", p), fmt.Sprintf("%d", series.Omega(p)), series.Classify(p).String())
	}
	fmt.Println(table.View(styles))

	if len(report.Mismatches) > 0 {
		for _, m := range report.Mismatches {
			fmt.Printf("%s p = %d: rule %d, brute force %d\n",
				styles.Fail.Render("MISMATCH"), m.P, m.Rule, m.Brute)
		}
		return fmt.Errorf("%d omega mismatches below %d", len(report.Mismatches), report.PMax)
	}

	fmt.Printf("%s omega_Q verified for all %d primes <= %d\n",
		styles.Pass.Render("PASS"), report.Checked, report.PMax)
	return nil
}
