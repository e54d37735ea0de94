package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// OpenInBrowser opens the URL in the system default browser.
func OpenInBrowser(url string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, url).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, url).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, url).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
