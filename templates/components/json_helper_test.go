package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"name":"Ovies"}`, JSON(map[string]string{"name": "Ovies"}))
	assert.Equal(t, "{}", JSON(make(chan int)))
}

func TestJSONLDEscapesScriptClose(t *testing.T) {
	out := string(JSONLD(map[string]string{"name": "</script><b>"}))
	assert.NotContains(t, out, "</script>")
	assert.Contains(t, out, `\u003c/script\u003e`)
}
