// Command difftool is a CLI front end over the diffutil package.
package main

import (
	"os"

	"github.com/pspjuth/DiffUtilTcl/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
