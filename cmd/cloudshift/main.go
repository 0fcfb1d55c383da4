// cmd/cloudshift/main.go
package main

import (
	"github.com/cloudshift-cli/cloudshift/pkg/cli"
)

func main() {
	cli.Execute()
}
