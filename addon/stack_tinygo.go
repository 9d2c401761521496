//go:build tinygo

package addon

func captureStack() []byte {
	return nil
}
