//go:build !tinygo

package addon

import "runtime/debug"

func captureStack() []byte {
	return debug.Stack()
}
