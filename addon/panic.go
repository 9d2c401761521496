package addon

// PanicInfo contains details about a recovered addon panic.
type PanicInfo struct {
	ID    ID
	Name  string
	Value any
	Stack []byte
}
