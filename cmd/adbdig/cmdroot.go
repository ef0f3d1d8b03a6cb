// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	indentation     *uint
	spinnerInterval *time.Duration
	workerNumber    *uint
	dnsServer       *string
	permitDevRaw    *bool
	jsonOutput      *bool
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "adbdig [flags] endpoint [endpoint ...]",
		Short:   "adbdig digs and validates device-bridge endpoint addresses",
		Version: "0.9",
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *indentation > 80 {
				return fmt.Errorf("--indentation width out of range [0..80]")
			}
			if *workerNumber < 1 || *workerNumber > 10 {
				return fmt.Errorf("--workers out of range [1..10]")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if *debug {
				logrus.SetLevel(logrus.DebugLevel)
				logrus.Debugf("debug logging enabled")
			}
			return DigAndReport(context.Background(), args)
		},
	}
	// Sets up the flags.
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	indentation = rootCmd.PersistentFlags().Uint(
		"indent", 3, "indentation width")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", 5, "number of digging and vetting workers")
	dnsServer = rootCmd.PersistentFlags().String(
		"dns", "", "\"host:port\" of DNS server to use instead of the platform resolver")
	permitDevRaw = rootCmd.PersistentFlags().Bool(
		"dev-raw", false, "additionally accept \"dev-raw:path\" endpoints")
	jsonOutput = rootCmd.PersistentFlags().Bool(
		"json", false, "emit the final qualified endpoints as JSON instead of a live display")
	return
}
