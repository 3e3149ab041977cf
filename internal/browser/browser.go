// Package browser opens URLs with the platform's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Open launches rawURL with the system's default handler and returns
// without waiting. Custom-scheme URIs (steam://...) route to whatever
// protocol handler the desktop has registered; web URLs open in the
// default browser. The TUI keeps the terminal, so the launch is always
// detached.
func Open(rawURL string) error {
	name, args, err := commandFor(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	return cmd.Start()
}

func commandFor(goos, rawURL string) (string, []string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", nil, fmt.Errorf("url is empty")
	}
	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "linux":
		return "xdg-open", []string{rawURL}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", rawURL}, nil
	default:
		return "", nil, fmt.Errorf("url opening not supported on %s", goos)
	}
}
