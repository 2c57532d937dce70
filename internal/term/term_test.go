package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourneighborhoodchef/airmon/internal/stats"
)

func TestEscapeCmd(t *testing.T) {
	cases := map[string]string{
		"plain title":        "plain title",
		"a | b":              "a ^| b",
		"(x) & y!":           "^(x^) ^& y^!",
		"already ^ escaped":  "already ^^ escaped",
		"caret then pipe ^|": "caret then pipe ^^^|",
	}
	for in, want := range cases {
		assert.Equal(t, want, escapeCmd(in), "input %q", in)
	}
}

func TestUnixPresenterWritesOSCSequence(t *testing.T) {
	var buf bytes.Buffer
	p := unixPresenter{out: &buf}

	assert.NoError(t, p.SetTitle("AirUp Checker | No Stock: 2 | Stock: 0"))
	assert.Equal(t, "\033]0;AirUp Checker | No Stock: 2 | Stock: 0\a", buf.String())

	buf.Reset()
	assert.NoError(t, p.Clear())
	assert.Equal(t, "\033[H\033[2J", buf.String())
}

type fakePresenter struct {
	titles []string
}

func (f *fakePresenter) SetTitle(title string) error {
	f.titles = append(f.titles, title)
	return nil
}

func (f *fakePresenter) Clear() error { return nil }

func TestReporterPushesCurrentTitle(t *testing.T) {
	st := stats.New()
	p := &fakePresenter{}
	r := NewReporter(p, st)

	r.Refresh()
	st.RecordCheck()
	st.RecordOutOfStock()
	r.Refresh()

	assert.Equal(t, []string{
		"AirUp Checker | No Stock: 0 | Stock: 0",
		"AirUp Checker | No Stock: 1 | Stock: 0",
	}, p.titles)
}

func TestNilReporterIsSafe(t *testing.T) {
	var r *Reporter
	assert.NotPanics(t, func() { r.Refresh() })
}
