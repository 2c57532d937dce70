package notify

import "github.com/gen2brain/beeep"

// Desktop raises a local OS popup. Display duration is owned by the
// platform's notification daemon, roughly ten seconds on the desktops that
// matter here.
type Desktop struct{}

func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) Name() string {
	return "desktop"
}

func (d *Desktop) Send(title, message string, _ Status) error {
	return beeep.Notify(title, message, "")
}
