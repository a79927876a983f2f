//go:build !analysis
// +build !analysis

// cmd/cmd.go
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quantum-query/bernsteinvazirani"
	"quantum-query/deutschjozsa"
	"quantum-query/measure"
	"quantum-query/oracle"
	"quantum-query/prof"
	"quantum-query/simon"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// report is the JSON artifact written under ./Results after each run.
type report struct {
	RunID     string `json:"run_id"`
	Timestamp string `json:"timestamp"`
	Algorithm string `json:"algorithm"`
	N         int    `json:"n"`
	Oracle    string `json:"oracle"`
	Result    string `json:"result"`
	Queries   uint64 `json:"queries"`
}

func writeReport(rep report) error {
	if err := os.MkdirAll("Results", 0755); err != nil {
		return fmt.Errorf("create Results folder: %w", err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fname := filepath.Join("Results", fmt.Sprintf("%s_%s.json", rep.Algorithm, rep.RunID))
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	zap.L().Info("report written", zap.String("path", fname))
	return nil
}

func newReport(algorithm string, n int, oracleSpec, result string, queries uint64) report {
	return report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		Algorithm: algorithm,
		N:         n,
		Oracle:    oracleSpec,
		Result:    result,
		Queries:   queries,
	}
}

// parseBitOracle understands "constant0", "constant1" and "dot:BITS".
func parseBitOracle(spec string, n int) (oracle.BitOracle, int, error) {
	switch {
	case spec == "constant0":
		return oracle.Constant(n, 0), n, nil
	case spec == "constant1":
		return oracle.Constant(n, 1), n, nil
	case strings.HasPrefix(spec, "dot:"):
		s, err := oracle.Parse(strings.TrimPrefix(spec, "dot:"))
		if err != nil {
			return nil, 0, err
		}
		return oracle.DotProduct(s), s.Len(), nil
	}
	return nil, 0, fmt.Errorf("unknown oracle spec %q (want constant0, constant1 or dot:BITS)", spec)
}

func newDeutschJozsaCmd() *cobra.Command {
	var n int
	var oracleSpec string
	cmd := &cobra.Command{
		Use:   "deutsch-jozsa",
		Short: "Decide whether a promised constant-or-balanced oracle is constant or balanced",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer prof.Track(time.Now(), "deutschjozsa.Classify")
			f, width, err := parseBitOracle(oracleSpec, n)
			if err != nil {
				return err
			}
			cb := oracle.NewCountingBit(f, "deutschjozsa")
			kind := deutschjozsa.Classify(cb.Oracle(), width)
			zap.L().Info("classified",
				zap.Int("n", width),
				zap.String("oracle", oracleSpec),
				zap.Stringer("kind", kind),
				zap.Uint64("queries", cb.Queries()),
			)
			return writeReport(newReport("deutsch-jozsa", width, oracleSpec, kind.String(), cb.Queries()))
		},
	}
	cmd.Flags().IntVar(&n, "n", 3, "input width in bits (ignored for dot:BITS oracles)")
	cmd.Flags().StringVar(&oracleSpec, "oracle", "constant1", "oracle spec: constant0, constant1 or dot:BITS")
	return cmd
}

func newBernsteinVaziraniCmd() *cobra.Command {
	var secret string
	cmd := &cobra.Command{
		Use:   "bernstein-vazirani",
		Short: "Recover the hidden string of a mod-2 dot-product oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer prof.Track(time.Now(), "bernsteinvazirani.Recover")
			s, err := oracle.Parse(secret)
			if err != nil {
				return err
			}
			cb := oracle.NewCountingBit(oracle.DotProduct(s), "bernsteinvazirani")
			got := bernsteinvazirani.Recover(cb.Oracle(), s.Len())
			if !got.Equal(s) {
				return fmt.Errorf("recovered %s, hidden string was %s", got, s)
			}
			zap.L().Info("recovered",
				zap.Int("n", s.Len()),
				zap.Stringer("secret", got),
				zap.Uint64("queries", cb.Queries()),
			)
			return writeReport(newReport("bernstein-vazirani", s.Len(), "dot:"+secret, got.String(), cb.Queries()))
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "1011", "hidden bit string, most significant bit first")
	return cmd
}

func newSimonCmd() *cobra.Command {
	var secret, seedHex, permuteKeyHex string
	var maxSamples, probes int
	cmd := &cobra.Command{
		Use:   "simon",
		Short: "Recover the hidden XOR shift of a two-to-one oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer prof.Track(time.Now(), "simon.Recover")
			b, err := oracle.Parse(secret)
			if err != nil {
				return err
			}
			var f oracle.VectorOracle
			spec := "coset-min:" + secret
			if permuteKeyHex != "" {
				key, err := hex.DecodeString(permuteKeyHex)
				if err != nil {
					return fmt.Errorf("decode permute key: %w", err)
				}
				f = oracle.Permuted(b, key)
				spec = "permuted:" + secret
			} else {
				f = oracle.CosetMin(b)
			}
			cv := oracle.NewCountingVector(f, "simon")

			var opts []simon.Option
			if seedHex != "" {
				seed, err := hex.DecodeString(seedHex)
				if err != nil {
					return fmt.Errorf("decode seed: %w", err)
				}
				opts = append(opts, simon.WithSeed(seed))
			}
			if maxSamples > 0 {
				opts = append(opts, simon.WithMaxSamples(maxSamples))
			}
			if probes > 0 {
				opts = append(opts, simon.WithProbes(probes))
			}

			got, err := simon.Recover(cv.Oracle(), b.Len(), opts...)
			if err != nil {
				return err
			}
			zap.L().Info("recovered",
				zap.Int("n", b.Len()),
				zap.Stringer("shift", got),
				zap.Uint64("queries", cv.Queries()),
			)
			return writeReport(newReport("simon", b.Len(), spec, got.String(), cv.Queries()))
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "110", "hidden shift, most significant bit first (all zeros for a one-to-one oracle)")
	cmd.Flags().StringVar(&seedHex, "seed", "", "hex PRNG seed for reproducible sampling")
	cmd.Flags().StringVar(&permuteKeyHex, "permute-key", "", "hex key; when set, outputs are pseudorandomly relabeled")
	cmd.Flags().IntVar(&maxSamples, "max-samples", 0, "sample bound before declaring the run degenerate (0 = default 64n)")
	cmd.Flags().IntVar(&probes, "probes", 0, "extra contract-violation probes after the solve")
	return cmd
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zap: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	defer measure.Global.Dump()

	root := &cobra.Command{
		Use:           "quantum-query",
		Short:         "Classical reference algorithms for textbook quantum query problems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDeutschJozsaCmd(), newBernsteinVaziraniCmd(), newSimonCmd())

	if err := root.Execute(); err != nil {
		zap.L().Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}
