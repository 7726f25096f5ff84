package main

import (
	"fmt"
	"os"

	"github.com/nisaba-tools/tablet/cmd"
)

func main() {
	if err := cmd.GetRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
