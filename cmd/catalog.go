package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/musika/chord"
	"github.com/jsphweid/musika/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogFormat string

func init() {
	catalogCmd.Flags().StringVarP(&catalogFormat, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists every chord shape",
	Long:  `Lists every chord shape in the order the finder reports them.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCatalog(cmd.OutOrStdout(), catalogFormat)
	},
}

func writeCatalog(w io.Writer, format string) error {
	var views []model.ShapeView
	for _, s := range chord.Shapes() {
		views = append(views, model.NewShapeView(s))
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, v := range views {
			fmt.Fprintf(w, "%-16s %-10s %-10q %v\n", v.Key, v.Family, v.Suffix, v.Steps)
		}
		return nil
	}
	return errors.Errorf("unknown output format %q", format)
}
