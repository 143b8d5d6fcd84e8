package cmd

import (
	"github.com/jsphweid/musika/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var plain bool

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "musika",
	Short: "Notes, chords and scales",
	Long:  `Builds chords and scales from a root, finds chords holding a set of notes and serves the same queries over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(constants.GetLogLevel())
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colored output")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
