// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Command protint demonstrates tamper evident integers against a simulated
// memory editor.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"gitlab.com/yawning/protint.git"
)

// Set at build time via -ldflags "-X main.version=...".
var version = "dev"

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

func main() {
	if err := execRootCmd(os.Args[1:], os.Stdout); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, out io.Writer) error {
	rootCmd := newRootCmd(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newRootCmd(out io.Writer) *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "protint",
		Short:         "Tamper evident integer playground",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLogLevel(logger.LogLevelVerbose)
			}
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(),
		newTrainerCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the protint utility",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("protint version", version)
		},
	}
}

// secretsParams selects the secret pair, a negative mask means "draw it".
type secretsParams struct {
	left, right int
}

func (p *secretsParams) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.left, "secret-left", -1, "Fixed left secret mask, drawn at random if negative")
	cmd.Flags().IntVar(&p.right, "secret-right", -1, "Fixed right secret mask, drawn at random if negative")
}

func (p *secretsParams) secrets() (*protint.Secrets, error) {
	hook := protint.WithTamperHook(func(ev protint.TamperEvent) {
		logger.Warning("tamper detected, left decodes to", ev.Left, "right decodes to", ev.Right)
	})

	if p.left >= 0 || p.right >= 0 {
		logger.Verbose("using fixed secrets")
		return protint.NewFixedSecrets(p.left, p.right, hook)
	}

	s := protint.NewSecrets(hook)
	if err := s.Init(); err != nil {
		return nil, err
	}
	logger.Verbose("secrets drawn from", s.Source())

	return s, nil
}
