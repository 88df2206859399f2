package main

import (
	"log/slog"
	"os"

	"github.com/hitoshi/coverdesk/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		slog.Error("application terminated with error", slog.Any("error", err))
		os.Exit(1)
	}
}
