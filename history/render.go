package history

// Render builds the display line from entries (oldest first).
//
// Entries are joined newest to oldest with single spaces and accumulation
// stops once the line reaches length bytes. A line that reaches length is cut
// to its last length bytes, so the newest input always stays visible at the
// right edge. A non-positive length renders "".
func Render(entries []string, length int) string {
	if length <= 0 {
		return ""
	}

	var line string
	for i := len(entries) - 1; i >= 0; i-- {
		if line == "" {
			line = entries[i]
		} else {
			line = entries[i] + " " + line
		}
		if len(line) >= length {
			break
		}
	}

	if len(line) >= length {
		return line[len(line)-length:]
	}
	return line
}
