package patcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrFileNotFound is returned when a target file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ActionKind selects how a matching line is rewritten.
type ActionKind int

const (
	// ActionReplace replaces the whole line with Action.Text.
	ActionReplace ActionKind = iota
	// ActionCommentOut prepends Action.Marker and a space to the line.
	ActionCommentOut
)

// Action describes the rewrite applied to matching lines.
type Action struct {
	Kind   ActionKind
	Text   string
	Marker string
}

// Replace returns an action replacing matching lines with text.
func Replace(text string) Action {
	return Action{Kind: ActionReplace, Text: text}
}

// CommentOut returns an action prefixing matching lines with marker.
func CommentOut(marker string) Action {
	return Action{Kind: ActionCommentOut, Marker: marker}
}

func (a Action) String() string {
	if a.Kind == ActionCommentOut {
		return fmt.Sprintf("comment out with %q", a.Marker)
	}
	return fmt.Sprintf("replace with %q", a.Text)
}

// UpdateLine rewrites every line of the file at path that starts with
// prefix and reports whether the file content changed.
//
// CommentOut prepends the marker without checking whether the line is
// already commented. A prefix that itself starts with the marker keeps
// matching, so such a line gains another marker on every run. Replace leaves
// a line alone when it already equals the replacement once trailing
// whitespace is trimmed. Line terminators and non-matching lines are
// preserved byte for byte.
func UpdateLine(path, prefix string, action Action) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// #nosec G304 - path comes from board discovery or the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, modified := rewriteLines(string(data), prefix, action)
	if !modified {
		return false, nil
	}

	if err := writeFileAtomic(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

// rewriteLines applies action to every line starting with prefix.
func rewriteLines(content, prefix string, action Action) (string, bool) {
	var b strings.Builder
	b.Grow(len(content))

	modified := false
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" || !strings.HasPrefix(line, prefix) {
			b.WriteString(line)
			continue
		}

		switch action.Kind {
		case ActionCommentOut:
			b.WriteString(action.Marker + " " + line)
			modified = true
		default:
			body := strings.TrimRightFunc(line, unicode.IsSpace)
			if body == action.Text {
				b.WriteString(line)
				continue
			}
			b.WriteString(action.Text + lineTerminator(line))
			modified = true
		}
	}

	return b.String(), modified
}

// lineTerminator returns the trailing "\r\n", "\n" or "" of line.
func lineTerminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

// writeFileAtomic replaces path through a temp file in the same directory.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
