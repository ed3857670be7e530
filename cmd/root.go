/*
Copyright © 2025 Honoka Toda, Shinya Ishitobi

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goatx/protoc-gen-objc/internal/config"
	"github.com/goatx/protoc-gen-objc/internal/driver"
	"github.com/goatx/protoc-gen-objc/internal/logger"
)

var (
	cfgFile  string
	settings *viper.Viper
	cfg      *config.Config
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"filter":    config.KeyFilter,
	"jobs":      config.KeyJobs,
	"log-json":  config.KeyLogJSON,
	"log-level": config.KeyLogLevel,
	"output":    config.KeyOutputDir,
	"bundle":    config.KeyBundle,
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "protoc-gen-objc",
	Short: "Generate Objective-C protocol buffer sources",
	Long: `protoc-gen-objc emits one .pbobjc.m implementation file per .proto file.
Run without a subcommand it acts as a protoc plugin, reading a CodeGeneratorRequest
from stdin and writing the response to stdout. The subcommands work on a
FileDescriptorSet instead (protoc --descriptor_set_out --include_imports).`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if cfgFile != "" {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
		}
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}

		c, err := config.Load(v)
		if err != nil {
			return err
		}
		if err := logger.Initialize(c.Log.JSON, c.Log.Level); err != nil {
			return err
		}
		settings, cfg = v, c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return driver.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), settings)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "read settings from a .yaml, .toml or .json file")
	flags.StringSlice("filter", nil, "full-name patterns of declarations to keep (default: keep all)")
	flags.Int("jobs", 4, "number of files generated concurrently")
	flags.Bool("log-json", false, "log as JSON")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
}
