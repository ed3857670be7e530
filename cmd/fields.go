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
	"github.com/spf13/cobra"

	"github.com/goatx/protoc-gen-objc/internal/driver"
	"github.com/goatx/protoc-gen-objc/internal/load"
)

// fieldsCmd represents the fields command
var fieldsCmd = &cobra.Command{
	Use:   "fields file.proto",
	Short: "Print the generator variables of every field as YAML",
	Args:  cobra.ExactArgs(1),
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

		data, err := driver.Fields(files[0], cfg.Options()).YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)

	fieldsCmd.Flags().StringP("descriptor-set", "d", "", "FileDescriptorSet to read")
	_ = fieldsCmd.MarkFlagRequired("descriptor-set")
}
