// Package cmd implements the magento-cli commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-api-magento-client/httpclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configFlags maps each persistent flag to the configuration key it sets. Keys are the ClientConfig
// mapstructure names, so MAGENTO_<KEY> environment variables and config file entries use them too.
var configFlags = map[string]string{
	"url":               "url",
	"consumer-key":      "consumer_key",
	"consumer-secret":   "consumer_secret",
	"access-token":      "access_token",
	"token-secret":      "token_secret",
	"version":           "version",
	"type":              "type",
	"log-level":         "log_level",
	"log-output-format": "log_output_format",
	"timeout":           "timeout",
	"proxy-url":         "proxy_url",
	"follow-redirects":  "follow_redirects",
	"hide-sensitive":    "hide_sensitive_data",
}

type app struct {
	v       *viper.Viper
	cfgFile string
	dryRun  bool
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree with its own configuration state.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "magento-cli",
		Short: "Signed requests against a Magento REST API",
		Long: "magento-cli sends OAuth 1.0a signed requests to a Magento 1.x or 2.x store.\n" +
			"Credentials come from flags, MAGENTO_* environment variables or a config file.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.magento.yaml)")
	flags.BoolVar(&a.dryRun, "dry-run", false, "print the resolved request instead of sending it")
	flags.String("url", "", "store base URL")
	flags.String("consumer-key", "", "integration consumer key")
	flags.String("consumer-secret", "", "integration consumer secret")
	flags.String("access-token", "", "integration access token")
	flags.String("token-secret", "", "integration access token secret")
	flags.Int("version", 2, "store major version, 1 selects the legacy API")
	flags.String("type", httpclient.DefaultEndpointType, "endpoint namespace for 2.x stores, e.g. V1 or a store code")
	flags.String("log-level", httpclient.DefaultLogLevelString, "log level (LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)")
	flags.String("log-output-format", "json", "log output format (json, pretty)")
	flags.Duration("timeout", httpclient.DefaultCustomTimeout, "request timeout")
	flags.String("proxy-url", "", "HTTP proxy URL")
	flags.Bool("follow-redirects", false, "follow GET redirects")
	flags.Bool("hide-sensitive", true, "redact secrets and cookies in logs")

	for flag, key := range configFlags {
		cobra.CheckErr(a.v.BindPFlag(key, flags.Lookup(flag)))
	}

	root.AddCommand(a.getCmd())
	root.AddCommand(a.writeCmd("post"))
	root.AddCommand(a.writeCmd("put"))
	root.AddCommand(a.deleteCmd())
	root.AddCommand(versionCmd())

	return root
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".magento")
	}

	a.v.SetEnvPrefix("MAGENTO")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		if a.cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
		return nil
	}
	fmt.Fprintln(os.Stderr, "Using config file:", a.v.ConfigFileUsed())
	return nil
}

func (a *app) clientConfig() (httpclient.ClientConfig, error) {
	var config httpclient.ClientConfig
	if err := a.v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decoding configuration: %w", err)
	}
	return config, nil
}

func (a *app) newClient() (*httpclient.Client, error) {
	config, err := a.clientConfig()
	if err != nil {
		return nil, err
	}
	return httpclient.BuildClient(config)
}
