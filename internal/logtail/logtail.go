package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

const (
	initialLineBuf = 64 * 1024
	maxLineBuf     = 1024 * 1024
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	t := tail{limit: maxLines}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, initialLineBuf), maxLineBuf)
	for sc.Scan() {
		t.push(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return t.lines(), nil
}

// tail keeps the newest limit lines in a ring; next is the oldest slot once
// the ring has wrapped.
type tail struct {
	limit int
	buf   []string
	next  int
}

func (t *tail) push(line string) {
	if t.limit <= 0 || len(t.buf) < t.limit {
		t.buf = append(t.buf, line)
		return
	}
	t.buf[t.next] = line
	t.next = (t.next + 1) % t.limit
}

func (t *tail) lines() []string {
	if t.next == 0 {
		return t.buf
	}
	return append(slices.Clone(t.buf[t.next:]), t.buf[:t.next]...)
}

// Level classifies a plain tint line ("2006-01-02 15:04:05 INF msg ...").
type Level int

const (
	LevelNone Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelTokens = map[string]Level{
	"DBG": LevelDebug,
	"INF": LevelInfo,
	"WRN": LevelWarn,
	"ERR": LevelError,
}

// LineLevel returns the level token of a log line, or LevelNone for lines
// that do not follow the date, time, level layout.
func LineLevel(line string) Level {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return LevelNone
	}
	// tint appends +N/-N to levels between the named ones.
	token := fields[2]
	if i := strings.IndexAny(token, "+-"); i > 0 {
		token = token[:i]
	}
	return levelTokens[token]
}
