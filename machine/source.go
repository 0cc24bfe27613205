package machine

import (
	"bufio"
	"io"
	"strings"
)

// ReadSource reads program text, one instruction per line.
// Text following a ';' on a line is a comment.
func ReadSource(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		text, _, _ := strings.Cut(scanner.Text(), ";")
		lines = append(lines, text)
	}

	err = scanner.Err()

	return
}
