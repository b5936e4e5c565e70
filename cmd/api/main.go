package main

import (
	"fmt"
	"os"

	"github.com/karaca-dev/movie-ticket-system/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
