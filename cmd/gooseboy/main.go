package main

import (
	"github.com/gooseboy/gooseboy/cmd/gooseboy/internal"
)

func main() {
	internal.Execute()
}
