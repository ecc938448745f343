package cmd

import (
	"github.com/abdul-hamid-achik/minihttp/packages/http"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPostCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "post <url> [key=value ...]",
		Short: "Send a POST request with a JSON body",
		Long: `Send a POST request whose body is a JSON object built from key=value
pairs. Each pair is split on its first '=', so values may contain '='.
Without pairs an empty object is sent.

Examples:
  minihttp post https://httpbin.org/post name=minihttp lang=go
  minihttp post http://localhost:8080/query filter=a=b`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewPost(args[0], args[1:]...)
			if err != nil {
				return err
			}
			return send(cmd, v, req)
		},
	}
}
