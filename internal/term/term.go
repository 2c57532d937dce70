// Package term pushes check statistics into the terminal window title and
// clears the console, hiding the per-platform mechanism behind Presenter.
package term

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/yourneighborhoodchef/airmon/internal/stats"
)

type Presenter interface {
	SetTitle(title string) error
	Clear() error
}

func NewPresenter() Presenter {
	if runtime.GOOS == "windows" {
		return windowsPresenter{}
	}
	return unixPresenter{out: os.Stdout}
}

type windowsPresenter struct{}

func (windowsPresenter) SetTitle(title string) error {
	return exec.Command("cmd", "/c", "title "+escapeCmd(title)).Run()
}

func (windowsPresenter) Clear() error {
	c := exec.Command("cmd", "/c", "cls")
	c.Stdout = os.Stdout
	return c.Run()
}

// escapeCmd escapes cmd.exe metacharacters. The caret goes first: it is the
// escape character, so carets introduced below must not be escaped again.
func escapeCmd(s string) string {
	s = strings.ReplaceAll(s, "^", "^^")
	for _, ch := range []string{"(", ")", "!", "&", "|", "<", ">"} {
		s = strings.ReplaceAll(s, ch, "^"+ch)
	}
	return s
}

type unixPresenter struct {
	out io.Writer
}

func (p unixPresenter) SetTitle(title string) error {
	_, err := fmt.Fprintf(p.out, "\033]0;%s\a", title)
	return err
}

func (p unixPresenter) Clear() error {
	_, err := fmt.Fprint(p.out, "\033[H\033[2J")
	return err
}

// Reporter pushes the current statistics title after every check. A title
// write that fails is ignored; the side channel is best effort.
type Reporter struct {
	p  Presenter
	st *stats.Statistics
}

func NewReporter(p Presenter, st *stats.Statistics) *Reporter {
	return &Reporter{p: p, st: st}
}

func (r *Reporter) Refresh() {
	if r == nil || r.p == nil {
		return
	}
	_ = r.p.SetTitle(r.st.Title())
}
