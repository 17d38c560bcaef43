// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/formats/wav"
)

func newResampleCmd(a *app) *cobra.Command {
	var (
		region regionFlags
		rate   int
	)

	cmd := &cobra.Command{
		Use:   "resample <input> <output.wav>",
		Short: "Resample a region to a mono 16-bit WAV at a fixed rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := a.load(cmd.Context(), args[0], region.start, region.end)
			if err != nil {
				return err
			}

			snap := s.Snapshot()
			data, err := audtrim.ExportResampled(snap.Buffer, snap.Region, rate)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}

			fmt.Fprintf(a.out, "wrote %s (%d frames at %d Hz)\n", args[1], (len(data)-wav.HeaderSize)/2, rate)

			return nil
		},
	}

	region.register(cmd)
	cmd.Flags().IntVar(&rate, "rate", 8000, "output sample rate in Hz")

	return cmd
}
