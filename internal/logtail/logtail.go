package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Entry is one decoded line of the browser log.
type Entry struct {
	Time    string
	Level   zapcore.Level
	Message string
	Fields  map[string]any
	// Raw holds lines that were not JSON log entries.
	Raw string
}

// Read returns the last maxLines lines of the log at path, or every line
// when maxLines is not positive. A missing file has no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		count = min(count+1, maxLines)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return slices.Clone(ring[:count]), nil
	}
	return append(slices.Clone(ring[next:]), ring[:next]...), nil
}

// Parse decodes a JSON log line. Lines that are not a JSON object, or
// that carry an unknown level, come back with only Raw set and info level.
func Parse(line string) Entry {
	raw := Entry{Level: zapcore.InfoLevel, Raw: line}
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil || len(fields) == 0 {
		return raw
	}

	e := Entry{Level: zapcore.InfoLevel}
	if ts, ok := fields["ts"].(string); ok {
		e.Time = ts
		delete(fields, "ts")
	}
	if lvl, ok := fields["level"].(string); ok {
		if err := e.Level.UnmarshalText([]byte(lvl)); err != nil {
			return raw
		}
		delete(fields, "level")
	}
	if msg, ok := fields["msg"].(string); ok {
		e.Message = msg
		delete(fields, "msg")
	}
	if len(fields) > 0 {
		e.Fields = fields
	}
	return e
}

// Filter keeps the entries at or above lvl.
func Filter(entries []Entry, lvl zapcore.Level) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Level >= lvl {
			out = append(out, e)
		}
	}
	return out
}

// Format renders an entry on one line with its fields sorted by key.
func Format(e Entry) string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if e.Time != "" {
		b.WriteString(e.Time)
		b.WriteByte(' ')
	}
	b.WriteString(e.Level.CapitalString())
	b.WriteByte(' ')
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}
