// Copyright 2024 The ticart Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bpowers/ticart/internal/cartfile"
)

func newLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List subdirectories and cartridges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			entries, err := cartfile.List(dir)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				if e.Dir {
					fmt.Fprintf(tw, "%s/\t\n", e.Name)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, humanize.Bytes(uint64(e.Size)))
			}
			return tw.Flush()
		},
	}
}
