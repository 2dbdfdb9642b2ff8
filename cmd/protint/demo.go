// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitlab.com/yawning/protint.git"
)

func newDemoCmd() *cobra.Command {
	var params secretsParams
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walks a Cell through the basic operations and a tamper",
		RunE: func(cmd *cobra.Command, args []string) error {
			secrets, err := params.secrets()
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), secrets)
		},
	}
	params.addFlags(cmd)
	return cmd
}

func runDemo(out io.Writer, secrets *protint.Secrets) error {
	score := secrets.New(42)
	fmt.Fprintln(out, "new(42):", score.Get())
	fmt.Fprintln(out, "increment:", score.Increment())
	fmt.Fprintln(out, "multiply(2):", score.Multiply(2))
	fmt.Fprintln(out, "from text \"not-a-number\":", secrets.NewFromText("not-a-number"))

	lives := secrets.New(10)
	r, err := lives.Compare(10)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "compare(10, 10):", r)
	if _, err = lives.Compare("10"); err != nil {
		fmt.Fprintln(out, "compare(10, \"10\"):", red(err))
	}

	left, right := score.Words()
	fmt.Fprintln(out, "words:", left, right)

	w, err := words(score)
	if err != nil {
		return err
	}
	w[0] = 9001
	fmt.Fprintln(out, "left word overwritten, first read:", red(score.Get()))
	fmt.Fprintln(out, "second read:", green(score.Get()))
	fmt.Fprintln(out, "tampered:", secrets.Tampered())

	return nil
}
