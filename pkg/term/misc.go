package term

import (
	"fmt"
	"strings"
)

// Options lists selector values under a heading.
func Options(title string, values []string) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	for _, v := range values {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	return b.String()
}

// Field is one line of the status box.
type Field struct {
	Name  string
	Value string
}

// Status boxes the project information.
func Status(title string, fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len([]rune(f.Name)))
	}
	lines := []string{StyleTitle.Render(title)}
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		lines = append(lines, StyleMuted.Render(fit(f.Name+":", width+1))+" "+StyleLabel.Render(value))
	}
	return StyleBox.Render(strings.Join(lines, "\n")) + "\n"
}

// Error formats a load failure for stderr.
func Error(what string, err error) string {
	return StyleError.Render(fmt.Sprintf("Error al cargar %s: %v", what, err)) + "\n"
}
