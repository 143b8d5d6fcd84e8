package cmd

import (
	"fmt"

	"github.com/jsphweid/musika/note"
	"github.com/jsphweid/musika/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic> <major|minor|penta-minor>",
	Short: "Builds a scale",
	Long:  `Builds a scale`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tonic, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		kind, err := scale.KindByKey(args[1])
		if err != nil {
			return err
		}
		s := scale.New(kind, tonic)
		fmt.Fprintln(cmd.OutOrStdout(), styled(sharpStyle, s.Sharp()))
		fmt.Fprintln(cmd.OutOrStdout(), styled(flatStyle, s.Flat()))
		return nil
	},
}
