package output

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// CaptureBuffer collects printer output so tests can inspect it without
// caring whether it was styled.
type CaptureBuffer struct {
	bytes.Buffer
}

// NewCaptureBuffer creates an empty capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Plain returns everything written so far with ANSI escape sequences removed.
func (c *CaptureBuffer) Plain() string {
	return ansi.Strip(c.String())
}

// Lines returns Plain split into lines, without the final newline.
func (c *CaptureBuffer) Lines() []string {
	content := strings.TrimSuffix(c.Plain(), "\n")
	if content == "" && c.Len() == 0 {
		return []string{}
	}
	return strings.Split(content, "\n")
}

// Contains reports whether the unstyled output contains text.
func (c *CaptureBuffer) Contains(text string) bool {
	return strings.Contains(c.Plain(), text)
}
