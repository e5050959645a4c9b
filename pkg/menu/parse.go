package menu

// isSpace reports ASCII whitespace. '\n' never reaches the parser because it
// terminates lines.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// trimSpace removes leading and trailing ASCII whitespace without copying.
func trimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func containsSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) || s[i] == '\n' {
			return true
		}
	}
	return false
}

func trimLeft(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// splitFirst splits s at the first whitespace run into a token and the rest.
func splitFirst(s string) (string, Args) {
	s = trimLeft(s)
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			return s[:i], ArgsOf(trimLeft(s[i:]))
		}
	}
	return s, NoArgs()
}

// parseLine splits a trimmed line into the command name and its arguments.
func parseLine(line string) (string, Args) {
	return splitFirst(line)
}
