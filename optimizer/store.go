package optimizer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// settingsHeader is the first line of a settings file. Kept for
// compatibility with files written by earlier releases.
const settingsHeader = "Game Settings:"

// Store persists a Settings collection as name=value lines.
type Store struct {
	path string
}

// NewStore returns a store reading and writing the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path the store operates on.
func (st *Store) Path() string {
	return st.path
}

// Save writes every setting's current value to the file, replacing any
// previous contents.
func (st *Store) Save(s *Settings) error {
	f, err := os.Create(st.path)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, settingsHeader)
	for _, setting := range s.Snapshot() {
		fmt.Fprintf(w, "%s=%d\n", setting.Name, setting.Value)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save settings: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Load reads the file and applies each name=value line through Update, so
// stored values are clamped into the current bounds. Header, blank, and
// malformed lines are skipped. Names the collection doesn't know are
// ignored: legacy files may carry settings this build no longer has.
func (st *Store) Load(s *Settings) error {
	f, err := os.Open(st.path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == settingsHeader {
			continue
		}

		name, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(rawValue))
		if err != nil {
			continue
		}

		if err := s.Update(strings.TrimSpace(name), value); err != nil {
			if errors.Is(err, ErrUnknownSetting) {
				continue
			}
			return fmt.Errorf("load settings: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return nil
}
