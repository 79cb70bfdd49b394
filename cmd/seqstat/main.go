// cmd/seqstat/main.go
package main

import (
	"seqlab/internal/appshell"
	"seqlab/internal/seqstatapp"
)

func main() {
	appshell.Main(seqstatapp.RunContext)
}
