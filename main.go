package main

import "github.com/goatx/protoc-gen-objc/cmd"

func main() {
	cmd.Execute()
}
