// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ik5/audtrim/decode"
)

type infoReport struct {
	Name       string  `json:"name" yaml:"name"`
	Type       string  `json:"type" yaml:"type"`
	Detected   string  `json:"detected" yaml:"detected"`
	SampleRate int     `json:"sample_rate" yaml:"sample_rate"`
	Channels   int     `json:"channels" yaml:"channels"`
	Frames     int     `json:"frames" yaml:"frames"`
	Duration   float64 `json:"duration" yaml:"duration"`
}

func newInfoCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Decode a file and print its sample rate, channels and length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, as, err := a.load(cmd.Context(), args[0], 0, -1)
			if err != nil {
				return err
			}

			buf := s.Snapshot().Buffer
			r := infoReport{
				Name:       as.Name(),
				Type:       as.Type(),
				Detected:   decode.FormatForType(as.Sniff()),
				SampleRate: buf.SampleRate(),
				Channels:   buf.ChannelCount(),
				Frames:     buf.FrameCount(),
				Duration:   buf.Duration(),
			}

			return render(a.out, output, r, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s: %d Hz, %d ch, %d frames, %.3fs\n",
					r.Name, r.SampleRate, r.Channels, r.Frames, r.Duration)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")

	return cmd
}
