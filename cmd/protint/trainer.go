// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"gitlab.com/yawning/protint.git"
)

var errUnexpectedLayout = errors.New("protint: unexpected Cell memory layout")

type trainerParams struct {
	secretsParams

	cells int
	value int
	poke  int
}

// trainerReport is the outcome of one simulated memory editing session.
type trainerReport struct {
	PlainHits   int
	PlainResult int

	CellHits   int
	CellResult int

	FirstRead  int
	SecondRead int
	Tampered   uint64
}

func newTrainerCmd() *cobra.Command {
	var params trainerParams
	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "Simulates a memory editor scanning for and patching a known value",
		RunE: func(cmd *cobra.Command, args []string) error {
			secrets, err := params.secrets()
			if err != nil {
				return err
			}
			report, err := runTrainer(secrets, params.cells, params.value, params.poke)
			if err != nil {
				return err
			}
			printTrainerReport(cmd.OutOrStdout(), report, params.poke)
			return nil
		},
	}
	params.addFlags(cmd)
	cmd.Flags().IntVar(&params.cells, "cells", 16, "Number of decoy values alongside the target")
	cmd.Flags().IntVar(&params.value, "value", 1000, "Value of the target the editor scans for")
	cmd.Flags().IntVar(&params.poke, "poke", 999999, "Value the editor writes over every hit")
	return cmd
}

// words returns the memory backing c, the way a memory editor sees it.
func words(c *protint.Cell) (*[2]int, error) {
	w := (*[2]int)(unsafe.Pointer(c))
	if l, r := c.Words(); w[0] != l || w[1] != r {
		return nil, errUnexpectedLayout
	}
	return w, nil
}

func scanCells(cells []*protint.Cell, value int) ([]*int, error) {
	var hits []*int
	for _, c := range cells {
		w, err := words(c)
		if err != nil {
			return nil, err
		}
		for i := range w {
			if w[i] == value {
				hits = append(hits, &w[i])
			}
		}
	}
	return hits, nil
}

func scanInts(values []int, value int) []*int {
	var hits []*int
	for i := range values {
		if values[i] == value {
			hits = append(hits, &values[i])
		}
	}
	return hits
}

func poke(hits []*int, value int) {
	for _, p := range hits {
		*p = value
	}
}

func runTrainer(secrets *protint.Secrets, n, value, patch int) (*trainerReport, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid number of cells: %d", n)
	}
	report := &trainerReport{}

	// Baseline: the target kept as a plain int.
	plain := make([]int, n+1)
	for i := range plain {
		plain[i] = i * 7
	}
	plain[n] = value
	hits := scanInts(plain, value)
	poke(hits, patch)
	report.PlainHits, report.PlainResult = len(hits), plain[n]
	logger.Verbose("plain scan hits:", report.PlainHits)

	// The same memory image, protected.
	cells := make([]*protint.Cell, n+1)
	for i := range cells {
		cells[i] = secrets.New(i * 7)
	}
	target := cells[n]
	target.Set(value)

	hits, err := scanCells(cells, value)
	if err != nil {
		return nil, err
	}
	poke(hits, patch)
	report.CellHits = len(hits)
	logger.Verbose("cell scan hits:", report.CellHits)

	// Patching whatever was found may have tripped detection already.
	report.CellResult = target.Get()
	target.Set(value)

	// An editor that located the target some other way and patches one word.
	w, err := words(target)
	if err != nil {
		return nil, err
	}
	w[0] = patch
	report.FirstRead = target.Get()
	report.SecondRead = target.Get()
	report.Tampered = secrets.Tampered()

	return report, nil
}

func printTrainerReport(out io.Writer, r *trainerReport, patch int) {
	status := func(v int) string {
		if v == patch {
			return red(v)
		}
		return green(v)
	}

	fmt.Fprintln(out, "plain int: hits", r.PlainHits, "value after patch", status(r.PlainResult))
	fmt.Fprintln(out, "protected: hits", r.CellHits, "value after patch", status(r.CellResult))
	fmt.Fprintln(out, "single word patch: first read", r.FirstRead, "second read", status(r.SecondRead))
	fmt.Fprintln(out, "tampered:", r.Tampered)
}
