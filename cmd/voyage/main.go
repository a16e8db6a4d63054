// Command voyage is a CLI client for the mon-voyage-pas-cher travel
// geography API.
package main

import (
	"github.com/mon-voyage/voyage-cli/internal/cli"
)

// version is set at build time.
var version = "0.3.0"

func main() {
	cli.Execute(version)
}
