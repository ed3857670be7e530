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
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/goatx/protoc-gen-objc/internal/driver"
	"github.com/goatx/protoc-gen-objc/internal/load"
	"github.com/goatx/protoc-gen-objc/internal/logger"
	"github.com/goatx/protoc-gen-objc/internal/output"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [file.proto...]",
	Short: "Generate .pbobjc.m files from a descriptor set",
	Long: `Generate one .pbobjc.m file for each named .proto file of the descriptor set,
or for every file in the set when none is named. Files are written below --output,
or collected into a single txtar archive with --bundle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setPath, err := cmd.Flags().GetString("descriptor-set")
		if err != nil {
			return err
		}

		set, err := load.Load(setPath)
		if err != nil {
			return err
		}
		files, err := set.Lookup(args...)
		if err != nil {
			return err
		}

		units, err := driver.Generate(cmd.Context(), files, cfg.Options(), cfg.Jobs)
		if err != nil {
			return err
		}

		var w output.Writer
		if cfg.Bundle != "" {
			w = output.NewBundleWriter(cfg.Bundle)
		} else {
			w = output.NewDirWriter(cfg.OutputDir)
		}
		if err := output.WriteAll(w, units); err != nil {
			return errors.Wrap(err, "failed to write generated files")
		}

		for _, u := range units {
			fmt.Fprintln(cmd.OutOrStdout(), u.Name)
		}
		logger.Named("generate").Infow("wrote files",
			logger.FieldCount, len(units),
			logger.FieldOutput, destination(cfg.OutputDir, cfg.Bundle))
		return nil
	},
}

func destination(dir, bundle string) string {
	if bundle != "" {
		return bundle
	}
	return dir
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("descriptor-set", "d", "", "FileDescriptorSet to read (.pb, .binpb, .desc, .protoset, .textproto, .txtpb)")
	generateCmd.Flags().StringP("output", "o", ".", "directory to write generated files to")
	generateCmd.Flags().String("bundle", "", "write every generated file into this txtar archive instead")
	generateCmd.MarkFlagsMutuallyExclusive("output", "bundle")
	_ = generateCmd.MarkFlagRequired("descriptor-set")
}
