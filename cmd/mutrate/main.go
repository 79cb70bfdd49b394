// cmd/mutrate/main.go
package main

import (
	"seqlab/internal/appshell"
	"seqlab/internal/mutrateapp"
)

func main() {
	appshell.Main(mutrateapp.RunContext)
}
