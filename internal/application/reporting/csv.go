package reporting

import "strings"

// CSVFile is a rendered CSV export ready to stream to the client.
type CSVFile struct {
	Filename string
	Content  string
}

// CSVBuilder assembles CSV content. Every field is quoted, matching the
// format the accounting tooling downstream expects.
type CSVBuilder struct {
	buf strings.Builder
}

// NewCSVBuilder creates an empty CSVBuilder.
func NewCSVBuilder() *CSVBuilder {
	return &CSVBuilder{}
}

// WriteRow appends one row, quoting each field and doubling embedded quotes.
func (b *CSVBuilder) WriteRow(fields ...string) {
	for i, field := range fields {
		if i > 0 {
			b.buf.WriteByte(',')
		}
		b.buf.WriteByte('"')
		b.buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.buf.WriteByte('"')
	}
	b.buf.WriteByte('\n')
}

// String returns the accumulated CSV content.
func (b *CSVBuilder) String() string {
	return b.buf.String()
}
