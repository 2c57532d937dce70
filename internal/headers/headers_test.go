package headers

import (
	"testing"

	http "github.com/bogdanfinn/fhttp"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	h := Build()

	assert.Equal(t, "text/x-component", h.Get("Accept"))
	assert.Equal(t, "text/plain;charset=UTF-8", h.Get("Content-Type"))
	assert.Equal(t, nextAction, h.Get("Next-Action"))
	assert.Equal(t, headerOrder, h[http.HeaderOrderKey])

	// Every ordered header must actually be set.
	for _, name := range headerOrder {
		assert.NotEmpty(t, h.Get(name), "missing header %s", name)
	}
}
