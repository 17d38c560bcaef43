// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type regionFlags struct {
	start, end float64
}

func (f *regionFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.start, "start", 0, "region start in seconds")
	cmd.Flags().Float64Var(&f.end, "end", -1, "region end in seconds (default: end of clip)")
}

func newTrimCmd(a *app) *cobra.Command {
	var (
		region regionFlags
		out    string
	)

	cmd := &cobra.Command{
		Use:   "trim <file>",
		Short: "Export a region of a file as mono 16-bit WAV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := a.load(cmd.Context(), args[0], region.start, region.end)
			if err != nil {
				return err
			}

			f, err := s.Export()
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = filepath.Join(filepath.Dir(args[0]), f.Name)
			}

			if err := os.WriteFile(path, f.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			fmt.Fprintf(a.out, "wrote %s (%d frames at %d Hz)\n", path, f.Frames, f.SampleRate)

			return nil
		},
	}

	region.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "output path (default trimmed-<name> next to the input)")

	return cmd
}
