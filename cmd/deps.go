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

	"github.com/spf13/cobra"

	"github.com/goatx/protoc-gen-objc/internal/driver"
	"github.com/goatx/protoc-gen-objc/internal/load"
)

// depsCmd represents the deps command
var depsCmd = &cobra.Command{
	Use:   "deps file.proto",
	Short: "List the classes a file's messages depend on",
	Long: `Walk the imports of a .proto file and print, one per line and sorted, the
Objective-C class names referenced by message and enum fields of the file and of
everything it imports.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setPath, err := cmd.Flags().GetString("descriptor-set")
		if err != nil {
			return err
		}

		set, err := load.Load(setPath)
		if err != nil {
			return err
		}
		files, err := set.Lookup(args[0])
		if err != nil {
			return err
		}

		for _, name := range driver.Dependencies(files[0], cfg.Options()) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(depsCmd)

	depsCmd.Flags().StringP("descriptor-set", "d", "", "FileDescriptorSet to read")
	_ = depsCmd.MarkFlagRequired("descriptor-set")
}
