package util

import (
	"os/exec"
	"runtime"
)

// OpenBrowser opens the default browser on the clerk's machine.
// Works on Windows 7+, macOS and Linux.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// rundll32 via url.dll is more reliable than `cmd /c start`,
		// in particular on older Windows installs.
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}

// OpenBrowserWithFallback tries OpenBrowser first and falls back to
// platform-specific alternatives.
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", url).Start()
	case "linux":
		browsers := []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}
		for _, browser := range browsers {
			if err := exec.Command(browser, url).Start(); err == nil {
				return nil
			}
		}
	}

	return err
}
