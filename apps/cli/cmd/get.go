package cmd

import (
	"github.com/abdul-hamid-achik/minihttp/packages/http"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request",
		Long: `Send a GET request to an absolute URL and print the response.

Examples:
  minihttp get https://httpbin.org/get
  minihttp get http://localhost:8080/health --no-color`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewGet(args[0])
			if err != nil {
				return err
			}
			return send(cmd, v, req)
		},
	}
}
