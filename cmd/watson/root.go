package main

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RoeZX/watson-go-sdk/core"
)

// cli carries the configuration shared by every subcommand.
type cli struct {
	v   *viper.Viper
	log zerolog.Logger

	// transport overrides the HTTP transport; set by tests.
	transport core.Transport
}

func newRootCmd() *cobra.Command {
	return (&cli{v: viper.New()}).command()
}

func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "watson",
		Short: "IBM Watson API client",
		Long: "watson calls the Watson Assistant, Discovery, Natural Language Understanding " +
			"and Compare and Comply APIs and prints each result as JSON.\n\n" +
			"Credentials come from --apikey, WATSON_APIKEY, or the per-service " +
			"environment variables and ibm-credentials.env file.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.log = c.newLogger(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.String("url", "", "Service endpoint (default: the service's public endpoint)")
	pf.String("apikey", "", "IBM Cloud API key, exchanged for IAM tokens")
	pf.String("version", "", "API version date, e.g. 2019-07-12 (default depends on the service)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.Bool("debug", false, "Debug output")
	pf.Bool("fasthttp", false, "Send requests with the fasthttp transport")

	for _, name := range []string{"url", "apikey", "version", "verbose", "debug", "fasthttp"} {
		_ = c.v.BindPFlag(name, pf.Lookup(name))
	}
	c.v.SetEnvPrefix("WATSON")
	c.v.AutomaticEnv()

	root.AddCommand(c.nluCmd(), c.assistantCmd(), c.discoveryCmd(), c.compareComplyCmd())
	return root
}

func (c *cli) newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case c.v.GetBool("debug"):
		level = zerolog.DebugLevel
	case c.v.GetBool("verbose"):
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().
		Logger()
}

// version returns the --version flag, falling back to def.
func (c *cli) version(def string) string {
	if v := c.v.GetString("version"); v != "" {
		return v
	}
	return def
}

func (c *cli) serviceOptions() []core.ServiceOption {
	opts := []core.ServiceOption{core.WithLogger(c.log)}
	if u := c.v.GetString("url"); u != "" {
		opts = append(opts, core.WithURL(u))
	}
	if key := c.v.GetString("apikey"); key != "" {
		opts = append(opts, core.WithIAMAPIKey(key))
	}
	switch {
	case c.transport != nil:
		opts = append(opts, core.WithTransport(c.transport))
	case c.v.GetBool("fasthttp"):
		opts = append(opts, core.WithTransport(core.NewFastHTTPTransport()))
	}
	return opts
}

// printResult writes the decoded result of resp as indented JSON.
func printResult[T any](c *cli, cmd *cobra.Command, resp *core.DetailedResponse[T]) error {
	c.log.Info().
		Int("status", resp.StatusCode).
		Str("transaction_id", resp.TransactionID()).
		Msg("response received")

	out, err := json.MarshalIndent(resp.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
