// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/predict"
)

type predictReport struct {
	File   string          `json:"file" yaml:"file"`
	Result *predict.Result `json:"result" yaml:"result"`
}

func newPredictCmd(a *app) *cobra.Command {
	var (
		region regionFlags
		output string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "predict <file>",
		Short: "Send a region to the emotion recognition backend",
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

			data := f.Data
			if rate := a.cfg.Predict.SampleRate; rate > 0 && rate != f.SampleRate {
				snap := s.Snapshot()
				if data, err = audtrim.ExportResampled(snap.Buffer, snap.Region, rate); err != nil {
					return err
				}
			}

			client := predict.NewClient(a.cfg.Predict.URL,
				predict.WithTimeout(a.cfg.Predict.Timeout),
				predict.WithLogger(a.log),
			)

			res, err := client.Predict(cmd.Context(), f.Name, data)
			if err != nil {
				return err
			}

			report := predictReport{File: f.Name, Result: res}

			return render(a.out, output, report, func(w io.Writer) error {
				fmt.Fprintf(w, "%s: %s (%.1f%%)\n", f.Name, res.Emotion, res.Confidence*100)
				for _, sc := range res.Top(top) {
					fmt.Fprintf(w, "  %-10s %5.1f%%\n", sc.Label, sc.Probability*100)
				}
				return nil
			})
		},
	}

	region.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().IntVar(&top, "top", 3, "number of probabilities to list (0 for all)")
	cmd.Flags().String("url", "", "prediction backend base URL")
	a.v.BindPFlag("predict.url", cmd.Flags().Lookup("url"))

	return cmd
}
