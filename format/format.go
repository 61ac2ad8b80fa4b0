// Package format provides the default element stringification used when rendering containers.
package format

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Element converts the given element into the representation used when rendering a container without a
// caller-supplied stringifier; elements are rendered as JSON, falling back to fmt formatting for values which can't
// be marshalled.
func Element[T any](element T) string {
	rendered, err := jsoniter.MarshalToString(element)
	if err != nil {
		return fmt.Sprintf("%v", element)
	}

	return rendered
}
