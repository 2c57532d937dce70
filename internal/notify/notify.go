// Package notify fans a single availability event out to the configured
// notification backends.
package notify

// Status classifies a log line or notification and selects its color and icon.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusInfo
	StatusWarning
)

var statusNames = map[Status]string{
	StatusSuccess: "success",
	StatusError:   "error",
	StatusInfo:    "info",
	StatusWarning: "warning",
}

// Discord embed colors, one per status.
var statusColors = map[Status]int{
	StatusSuccess: 0x00FF00,
	StatusError:   0xFF0000,
	StatusInfo:    0x00FFFF,
	StatusWarning: 0xFFFF00,
}

var statusEmojis = map[Status]string{
	StatusSuccess: "✅",
	StatusError:   "❌",
	StatusInfo:    "ℹ️",
	StatusWarning: "⚠️",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "info"
}

func (s Status) Color() int {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusInfo]
}

func (s Status) Emoji() string {
	if e, ok := statusEmojis[s]; ok {
		return e
	}
	return statusEmojis[StatusInfo]
}

// Notifier is the capability every backend implements.
type Notifier interface {
	Name() string
	Send(title, message string, status Status) error
}

// Logger is the subset of the logging package the fan-out needs. Declared
// here to keep the import direction logging -> notify.
type Logger interface {
	Log(status Status, format string, args ...interface{})
}

// Fanout delivers one event to every registered backend in registration
// order. A failing backend is logged and skipped; it never blocks the
// backends after it and never surfaces an error to the caller.
type Fanout struct {
	log      Logger
	backends []Notifier
}

func NewFanout(log Logger, backends ...Notifier) *Fanout {
	return &Fanout{log: log, backends: backends}
}

func (f *Fanout) Register(n Notifier) {
	f.backends = append(f.backends, n)
}

func (f *Fanout) Send(title, message string, status Status) {
	for _, backend := range f.backends {
		if err := backend.Send(title, message, status); err != nil {
			f.log.Log(StatusError, "Error sending notification via %s: %v", backend.Name(), err)
		}
	}
}
