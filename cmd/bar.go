package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/musika/bar"
	"github.com/jsphweid/musika/chord"
	"github.com/jsphweid/musika/note"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(barCmd)
}

var barCmd = &cobra.Command{
	Use:   "bar <bar>...",
	Short: "Prints a progression",
	Long: `Prints a progression. Each argument is one bar of comma separated
elements: "_" is a silence, "D:minor7" a chord and "E" a single note.

  musika bar D:minor7,_ G:dominant7,_ C:major7`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bars := make([]bar.Bar, 0, len(args))
		for _, arg := range args {
			b, err := parseBar(arg)
			if err != nil {
				return err
			}
			bars = append(bars, b)
		}
		fmt.Fprintln(cmd.OutOrStdout(), styled(nameStyle, bar.Show(bars...)))
		return nil
	},
}

// parseBar gives every element an equal share of the bar.
func parseBar(s string) (bar.Bar, error) {
	tokens := strings.Split(s, ",")
	fraction := uint8(len(tokens))
	b := bar.New()
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "_" {
			b = b.WithSilence(fraction)
			continue
		}

		name, shapeKey, isChord := strings.Cut(token, ":")
		root, err := note.Parse(name)
		if err != nil {
			return bar.Bar{}, errors.Wrapf(err, "bar %q", s)
		}
		if !isChord {
			b = b.WithNote(root, fraction)
			continue
		}
		shape, err := chord.ShapeByKey(shapeKey)
		if err != nil {
			return bar.Bar{}, errors.Wrapf(err, "bar %q", s)
		}
		b = b.WithChord(shape.Build(root), fraction)
	}
	return b, nil
}
