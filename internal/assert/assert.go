// Package assert holds checks for programmer errors, they panic instead of
// returning an error.
package assert

import "fmt"

// NotNil panics when value is nil, name identifies the value in the message.
func NotNil(value any, name string) {
	if value == nil {
		panic(fmt.Sprintf("expected %s to be not nil", name))
	}
}

func NotEmptyStr(str string, name string) {
	if str == "" {
		panic(fmt.Sprintf("expected %s to be non-empty", name))
	}
}
