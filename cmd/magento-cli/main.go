// Package main is the entry point for the magento-cli command line client.
package main

import (
	"github.com/deploymenttheory/go-api-magento-client/cmd/magento-cli/cmd"
)

func main() {
	cmd.Execute()
}
