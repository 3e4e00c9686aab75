package main

import (
	"context"
	"fmt"
	"os"

	"newsdeck/bootstrap"
)

func main() {
	ctx := context.Background()
	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "newsdeck: %v\n", err)
		os.Exit(1)
	}
}
