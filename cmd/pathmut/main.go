// cmd/pathmut/main.go
package main

import (
	"seqlab/internal/appshell"
	"seqlab/internal/pathmutapp"
)

func main() {
	appshell.Main(pathmutapp.RunContext)
}
