package cmd

import (
	"github.com/abdul-hamid-achik/minihttp/packages/core/config"
	"github.com/abdul-hamid-achik/minihttp/packages/core/logging"
	"github.com/abdul-hamid-achik/minihttp/packages/http"
	"github.com/abdul-hamid-achik/minihttp/packages/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// send dispatches req with the configured client and renders the response
// to the command's stdout.
func send(cmd *cobra.Command, v *viper.Viper, req *http.Request) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	level := logging.LevelWarn
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	noColor := cfg.NoColor || !colorEnabled(cmd.OutOrStdout())

	highlighter, err := output.NewChromaHighlighter(cfg.Style)
	if err != nil {
		return &config.Error{Key: config.KeyStyle, Err: err}
	}

	client := http.NewClient(
		http.WithTimeout(cfg.Timeout),
		http.WithMaxRedirects(cfg.MaxRedirects),
		http.WithUserAgent("minihttp/"+version),
		http.WithLogger(logger.WithComponent("dispatcher")),
	)

	resp, err := client.Dispatch(cmd.Context(), req)
	if err != nil {
		return err
	}

	renderer := output.NewConsoleRenderer(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithNoColor(noColor),
		output.WithHighlighter(highlighter),
		output.WithLogger(logger.WithComponent("renderer")),
	)
	return renderer.Render(resp)
}
