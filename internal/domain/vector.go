package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is a meaning embedding. It marshals to the pgvector text literal
// ("[0.1,0.2,...]") so it can be passed to Postgres as a $n::vector
// parameter and read back via ::text.
type Vector []float32

// String renders the pgvector literal.
func (v Vector) String() string {
	var b strings.Builder
	b.Grow(len(v)*10 + 2)
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

// ParseVector parses a pgvector text literal.
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("vector: malformed literal %q", s)
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return Vector{}, nil
	}

	parts := strings.Split(body, ",")
	v := make(Vector, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("vector: parse component %q: %w", p, err)
		}
		v = append(v, float32(f))
	}
	return v, nil
}
