package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Operation string  `json:"operation"`
	N1        int     `json:"n1"`
	N2        int     `json:"n2"`
	Q         float64 `json:"q"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := testPayload{
		Operation: "addition",
		N1:        19,
		N2:        3,
		Q:         2.0082748720981246,
	}

	for _, name := range []string{"json", "go-json"} {
		c, _ := ByName(name)

		data, err := c.Marshal(payload)
		require.NoError(t, err, name)

		var got testPayload
		require.NoError(t, c.Unmarshal(data, &got), name)
		assert.Equal(t, payload, got, name)
	}
}

func TestCodec_CrossDecode(t *testing.T) {
	// Both codecs emit JSON, so either can decode the other's output.
	payload := testPayload{Operation: "subtraction", N1: 11, N2: 2, Q: 1.6232492903979006}

	data := MustMarshal(JSON{}, payload)

	var got testPayload
	require.NoError(t, GoJSON{}.Unmarshal(data, &got))
	assert.Equal(t, payload, got)
}

func TestMustMarshal_NilCodecUsesDefault(t *testing.T) {
	data := MustMarshal(nil, testPayload{Operation: "multiplication", N1: 2, N2: 3})
	assert.NotEmpty(t, data)
}

func TestMustMarshal_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
