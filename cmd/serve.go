package cmd

import (
	"net/http"

	"github.com/jsphweid/musika/constants"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord and scale queries over HTTP",
	Long:  `Serves chord and scale queries over HTTP. The address comes from MUSIKA_ADDR.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	addr := constants.GetListenAddr()
	log.WithField("addr", addr).Info("listening")
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
