package menu

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when an integer prompt gets something else.
var ErrInvalidNumber = errors.New("valor inválido")

// readLine prints prompt and returns the next input line, trimmed.
// io.EOF is returned once input is exhausted.
func (m *Menu) readLine(prompt string) (string, error) {
	m.print(m.styles.Prompt.Render(prompt))
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readText(prompt string) (string, error) {
	return m.readLine(prompt)
}

// readInt reads a whole number.
func (m *Menu) readInt(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, line)
	}
	return n, nil
}

// readFloat reads a decimal accepting "," or "." as separator. Input that
// does not parse reads as 0.0 after a warning.
func (m *Menu) readFloat(prompt string) (float64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	v, ok := ParseDecimal(line)
	if !ok {
		m.warn("Valor inválido, usando 0.0")
		return 0, nil
	}
	return v, nil
}

// ParseDecimal parses s with either "," or "." as the decimal separator.
// NaN and infinities are rejected.
func ParseDecimal(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func itoa(n int) string { return strconv.Itoa(n) }
