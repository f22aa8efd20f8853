/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdioUI implements types.UIInputDialogue over a line-oriented reader
// and writer, stdin/stdout by default.
type StdioUI struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewStdioUI() *StdioUI {
	return &StdioUI{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

func (s *StdioUI) WithReader(r io.Reader) *StdioUI {
	s.reader = bufio.NewReader(r)
	return s
}

func (s *StdioUI) WithWriter(w io.Writer) *StdioUI {
	s.writer = w
	return s
}

// Get prompts the user for a line of input and returns it, stripping the
// trailing newline. A final line without a newline is still returned.
func (s *StdioUI) Get(userPrompt string) (string, error) {
	fmt.Fprint(s.writer, userPrompt)
	line, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
