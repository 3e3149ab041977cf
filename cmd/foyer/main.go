package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/softglow/foyer/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	contentURL := flag.String("content", "", "override content document URL (optional)")
	theme := flag.String("theme", "", "theme for this session: dark or light (optional)")
	openModal := flag.String("open", "", "modal id to open after load (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ContentURL: *contentURL,
		Theme:      *theme,
		OpenModal:  *openModal,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "foyer: %v\n", err)
		return 1
	}
	return 0
}
