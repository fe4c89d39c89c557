// cmd/homewatch/main.go
package main

import (
	"context"
	"os"

	"github.com/tamzrod/homewatch/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
