//go:build analysis
// +build analysis

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"quantum-query/counts"
	"quantum-query/oracle"
	"quantum-query/simon"

	"github.com/tuneinsight/lattigo/v4/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// randomNonzeroSecret draws a uniform nonzero n-bit shift.
func randomNonzeroSecret(n int, prng utils.PRNG) oracle.BitString {
	for {
		b := oracle.Random(n, prng)
		if !b.IsZero() {
			return b
		}
	}
}

// saveOutcomeCounts writes the per-shift recovery tallies next to the plot.
func saveOutcomeCounts(dstDir string, tally counts.Counts) error {
	out := struct {
		Timestamp string        `json:"timestamp"`
		Total     int           `json:"total"`
		Counts    counts.Counts `json:"counts"`
	}{
		Timestamp: time.Now().Format("20060102_150405"),
		Total:     tally.Total(),
		Counts:    tally,
	}
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return err
	}
	fname := filepath.Join(dstDir, fmt.Sprintf("outcomes_%s.json", out.Timestamp))
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	log.Printf("saved outcome counts to %s", fname)
	return nil
}

// plotHistogram plots the histogram of values and saves it to path.
func plotHistogram(values []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Oracle Queries per Recovery"
	h, err := plotter.NewHist(plotter.Values(values), 20)
	if err != nil {
		return err
	}
	p.Add(h)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return err
	}
	return nil
}

func main() {
	const (
		runs = 200
		n    = 6
	)

	prng, err := utils.NewKeyedPRNG([]byte("analysis"))
	if err != nil {
		log.Fatalf("keyed prng: %v", err)
	}

	tally := counts.New()
	values := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		secret := randomNonzeroSecret(n, prng)
		cv := oracle.NewCountingVector(oracle.CosetMin(secret), "analysis")
		got, err := simon.Recover(cv.Oracle(), n, simon.WithSeed([]byte(fmt.Sprintf("run-%d", i))))
		if err != nil {
			log.Fatalf("run %d/%d: %v", i+1, runs, err)
		}
		if !got.Equal(secret) {
			log.Fatalf("run %d/%d: recovered %s, hidden shift was %s", i+1, runs, got, secret)
		}
		tally.Add(got.String())
		values = append(values, float64(cv.Queries()))
	}

	if err := saveOutcomeCounts("Results", tally); err != nil {
		log.Fatalf("saveOutcomeCounts: %v", err)
	}
	if err := plotHistogram(values, filepath.Join("Results", "query_distribution.png")); err != nil {
		log.Fatalf("plotHistogram: %v", err)
	}
	fmt.Println("Histogram saved to Results/query_distribution.png")
}
