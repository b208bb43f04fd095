package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/logger"
	"github.com/jsphweid/scaledex/midi"
	"github.com/jsphweid/scaledex/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	var flags scaleFlags
	var out string
	cmd := &cobra.Command{
		Use:   "export ROOT",
		Short: "Writes a scale as a MIDI file",
		Long: `Writes a scale as a Standard MIDI File. With --out - the file goes to stdout,
otherwise to --out or a new file in --out-dir.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.spell(args[0])
			if err != nil {
				return err
			}

			opts := midi.DefaultOptions()
			opts.Octave = v.GetInt("octave")
			opts.Tempo = v.GetFloat64("tempo")
			opts.Triads = flags.chords
			if opts.Octave < -1 || opts.Octave > 9 {
				return fmt.Errorf("octave %d out of range -1..9", opts.Octave)
			}

			mf, err := midi.Render(s, opts)
			if err != nil {
				return err
			}
			logExport(s, opts)

			if out == "-" {
				return midi.Write(cmd.OutOrStdout(), mf)
			}
			path := out
			if path == "" {
				path = filepath.Join(v.GetString("out-dir"), uuid.New().String()+".mid")
			}
			if err := writeFile(path, func(w io.Writer) error { return midi.Write(w, mf) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path, - for stdout")
	cmd.Flags().String("out-dir", constants.GetOutDir(), "Directory for generated files when --out is not set")
	cmd.Flags().Int("octave", constants.GetOctave(), "Octave of the root note (C4 = middle C)")
	cmd.Flags().Float64("tempo", constants.GetTempo(), "Tempo in BPM")
	for _, name := range []string{"out-dir", "octave", "tempo"} {
		bindFlag(v, name, cmd.Flags())
	}
	return cmd
}

func writeFile(path string, write func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func logExport(s model.Scale, opts midi.Options) {
	log := logger.GetProjectLogger()
	log.WithFields(logrus.Fields{
		"notes":  model.ScaleStrings(s),
		"octave": opts.Octave,
		"tempo":  opts.Tempo,
		"triads": opts.Triads,
	}).Debug("rendering scale")

	if !opts.Triads || !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for _, t := range chord.Triads(s) {
		log.WithFields(logrus.Fields{
			"chord": t.Name,
			"keys":  chord.CreateChordKey(chord.Voicing(t, opts.Octave)),
		}).Debug("rendering triad")
	}
}
