package alert

import (
	"strings"
	"time"
)

// Variant is the severity of a notice.
type Variant string

const (
	Error   Variant = "error"
	Warning Variant = "warning"
	Info    Variant = "info"
	Success Variant = "success"
)

// DefaultAutoDismiss is how long a success notice stays on screen.
const DefaultAutoDismiss = 5 * time.Second

// Style is how a variant is rendered.
type Style struct {
	Tone  string `json:"tone"`
	Icon  string `json:"icon"`
	Title string `json:"title"`
}

var styles = map[Variant]Style{
	Error:   {Tone: "red", Icon: "✖", Title: "Error"},
	Warning: {Tone: "yellow", Icon: "!", Title: "Warning"},
	Info:    {Tone: "blue", Icon: "i", Title: "Info"},
	Success: {Tone: "green", Icon: "✔", Title: "Success"},
}

// Variants lists every variant in display order.
func Variants() []Variant {
	return []Variant{Error, Warning, Info, Success}
}

// Parse maps a raw variant name to a Variant; unknown names are Error.
func Parse(raw string) Variant {
	v := Variant(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := styles[v]; ok {
		return v
	}
	return Error
}

func (v Variant) Valid() bool {
	_, ok := styles[v]
	return ok
}

// Style returns the rendering of v, or the error style for an unknown variant.
func (v Variant) Style() Style {
	if s, ok := styles[v]; ok {
		return s
	}
	return styles[Error]
}

// Notice is a user-facing message attached to a response.
type Notice struct {
	Variant          Variant       `json:"variant"`
	Message          string        `json:"message"`
	Dismissible      bool          `json:"dismissible"`
	AutoDismissAfter time.Duration `json:"-"`
	AutoDismissMS    int64         `json:"auto_dismiss_ms,omitempty"`
}

func New(v Variant, message string) *Notice {
	n := &Notice{
		Variant:     Parse(string(v)),
		Message:     message,
		Dismissible: true,
	}
	if n.Variant == Success {
		n.WithAutoDismiss(DefaultAutoDismiss)
	}
	return n
}

func NewError(message string) *Notice { return New(Error, message) }

func NewSuccess(message string) *Notice { return New(Success, message) }

func NewInfo(message string) *Notice { return New(Info, message) }

func NewWarning(message string) *Notice { return New(Warning, message) }

// WithAutoDismiss sets the dismissal delay; zero keeps the notice until closed.
func (n *Notice) WithAutoDismiss(d time.Duration) *Notice {
	if d < 0 {
		d = 0
	}
	n.AutoDismissAfter = d
	n.AutoDismissMS = d.Milliseconds()
	return n
}

func (n *Notice) Style() Style {
	return n.Variant.Style()
}

// Expired reports whether an auto-dismissing notice shown at shownAt is gone by now.
func (n *Notice) Expired(shownAt, now time.Time) bool {
	if n == nil {
		return true
	}
	if n.AutoDismissAfter <= 0 {
		return false
	}
	return !now.Before(shownAt.Add(n.AutoDismissAfter))
}
