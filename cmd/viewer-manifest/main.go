package main

import "github.com/oshokin/viewer-manifest/cmd/viewer-manifest/cmd"

func main() {
	cmd.Execute()
}
