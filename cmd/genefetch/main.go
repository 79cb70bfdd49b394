// cmd/genefetch/main.go
package main

import (
	"seqlab/internal/appshell"
	"seqlab/internal/genefetchapp"
)

func main() {
	appshell.Main(genefetchapp.RunContext)
}
