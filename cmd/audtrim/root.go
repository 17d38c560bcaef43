// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/audtrim/asset"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/decode"
	"github.com/ik5/audtrim/internal/config"
	"github.com/ik5/audtrim/internal/logging"
	"github.com/ik5/audtrim/session"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer

	configPath string
	cfg        *config.Config
	log        *logrus.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "audtrim",
		Short:         "Trim audio regions into WAV files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./audtrim.yaml or ~/.config/audtrim/audtrim.yaml)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	a.v.BindPFlag("log_format", flags.Lookup("log-format"))

	root.AddCommand(
		newInfoCmd(a),
		newTrimCmd(a),
		newResampleCmd(a),
		newPredictCmd(a),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(a.errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log

	return nil
}

// load decodes path through an editor session and returns it ready, with
// the region set from start and end. A negative end selects up to the end
// of the clip.
func (a *app) load(ctx context.Context, path string, start, end float64) (*session.Session, *asset.Asset, error) {
	as, err := asset.Open(path, a.cfg.MaxAssetBytes)
	if err != nil {
		return nil, nil, err
	}

	if t := as.Type(); t != "" && !asset.IsAudioType(t) {
		a.log.WithFields(logrus.Fields{"asset": as.Name(), "type": t}).Warn("file type is not audio, trying anyway")
	}

	s := session.New(decode.New(decode.WithLogger(a.log)), session.WithLogger(a.log))
	s.Import(ctx, as)
	s.Wait()

	snap := s.Snapshot()
	if snap.State != session.StateReady {
		return nil, nil, snap.LastError
	}

	if end < 0 {
		end = snap.Buffer.Duration()
	}

	if _, err := s.SetRegion(audio.Region{Start: start, End: end}); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", audio.ErrEmptyRegion, err)
	}

	return s, as, nil
}
