package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElement(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("Int", func(t *testing.T) {
		require.Equal(t, "42", Element(42))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, `"alpha"`, Element("alpha"))
	})

	t.Run("Struct", func(t *testing.T) {
		require.Equal(t, `{"name":"alpha","count":2}`, Element(payload{Name: "alpha", Count: 2}))
	})

	t.Run("Unmarshallable", func(t *testing.T) {
		// Channels have no JSON representation, rendering falls back to fmt formatting
		require.NotEmpty(t, Element(make(chan int)))
	})
}
