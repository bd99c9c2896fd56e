// Package tray provides a system tray icon for the screenlink host using
// getlantern/systray. Its only job is showing that the server is up and
// offering a Quit entry that feeds the engine's shutdown command.
package tray

import (
	"github.com/getlantern/systray"
)

// Tray manages the system tray icon and menu
type Tray struct {
	tooltip string
	onQuit  func()
	quitCh  chan struct{}
}

// New creates a tray. onQuit is invoked once when the user picks Quit.
func New(tooltip string, onQuit func()) *Tray {
	return &Tray{
		tooltip: tooltip,
		onQuit:  onQuit,
		quitCh:  make(chan struct{}),
	}
}

// Run starts the tray event loop. Blocks; must be called from the main
// goroutine on platforms where the tray needs the main thread.
func (t *Tray) Run() {
	systray.Run(t.setupMenu, func() { close(t.quitCh) })
}

// Stop removes the tray icon and ends Run
func (t *Tray) Stop() {
	systray.Quit()
}

// setupMenu is called when systray is ready
func (t *Tray) setupMenu() {
	systray.SetTitle("Screenlink")
	systray.SetTooltip(t.tooltip)
	systray.SetIcon(getIcon())

	status := systray.AddMenuItem("Screenlink is running", "")
	status.Disable()
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Stop serving and exit")

	go func() {
		select {
		case <-quit.ClickedCh:
			if t.onQuit != nil {
				t.onQuit()
			}
		case <-t.quitCh:
		}
	}()
}

// getIcon returns a placeholder icon (valid 16x16 ICO)
func getIcon() []byte {
	icon := make([]byte, 1118)
	// ICO Header
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	// Icon Directory
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00,
		0x16, 0x00, 0x00, 0x00,
	})
	// DIB Header
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00,
		0x20, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0x20, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x04, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	// Pixels and mask stay 0 for transparency
	return icon
}
