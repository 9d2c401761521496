package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"inputhistory/addon"
	"inputhistory/config"
)

// installPanicHandler logs a crashed addon with its stack and keeps a
// one-line banner for the top of the panel.
func installPanicHandler(s *system) {
	s.addons.SetPanicHandler(func(info addon.PanicInfo) {
		s.logf("panic: addon=%s id=%d panic=%v", info.Name, info.ID, info.Value)
		for _, line := range strings.Split(string(info.Stack), "\n") {
			if line == "" {
				continue
			}
			s.logf("%s", line)
		}

		banner, _ := takeRunes(fmt.Sprintf("%s: %v", info.Name, info.Value), config.Columns)
		s.fault = banner
	})
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
