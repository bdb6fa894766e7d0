package main

import (
	"os"

	"github.com/vettura-project/vettura/pkg/vettura"
)

func main() {
	os.Exit(vettura.Run(os.Args))
}
