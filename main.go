package main

import (
	"context"
	"fmt"
	"os"

	"github.com/robalobadob/kelime/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
