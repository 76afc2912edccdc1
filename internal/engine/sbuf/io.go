package sbuf

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dshills/strand/internal/engine/str"
)

// minRead is the smallest spare-capacity window ReadFrom will read into.
const minRead = 512

// ReadFrom appends everything from r to the builder, reading directly into
// spare capacity and growing as needed. It implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if len(b.data)-b.n-1 < minRead {
			b.ensure(b.n + minRead + 1)
		}
		n, err := r.Read(b.data[b.n : len(b.data)-1])
		b.n += n
		total += int64(n)
		b.data[b.n] = 0
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// ReadFile appends the contents of the named file. The file size is
// reserved up front so the read lands in a single block.
func (b *Builder) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	// minRead extra keeps the trailing EOF probe from forcing a second
	// growth after the content has landed.
	b.Reserve(b.n + int(info.Size()) + minRead + 1)
	if _, err := b.ReadFrom(f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// ReadLine appends one line from r, excluding the trailing newline, growing
// as needed. It returns io.EOF only when no bytes remain to be read.
func (b *Builder) ReadLine(r *bufio.Reader) error {
	line, err := r.ReadBytes('\n')
	if len(line) == 0 && err != nil {
		return err
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	b.Append(str.Str(line))
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}
