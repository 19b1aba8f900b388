// Package journal keeps an append-only record of inventory runs in the
// product home, one JSON object per line.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joshyorko/rpms2sbom/common"
)

const journalFilename = "journal.jsonl"

type Event struct {
	When        int64  `json:"when"`
	Event       string `json:"event"`
	Root        string `json:"root,omitempty"`
	Output      string `json:"output,omitempty"`
	Packages    int    `json:"packages"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// Unify squeezes all whitespace runs to single spaces.
func Unify(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func Location() string {
	return filepath.Join(common.ToolMode().Home(), journalFilename)
}

// Post appends event to the journal; When is filled if missing.
func Post(event Event) error {
	if event.When == 0 {
		event.When = time.Now().Unix()
	}
	event.Detail = Unify(event.Detail)
	blob, err := json.Marshal(event)
	if err != nil {
		return err
	}
	location := Location()
	err = os.MkdirAll(filepath.Dir(location), 0o750)
	if err != nil {
		return err
	}
	handle, err := os.OpenFile(location, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	defer handle.Close()
	_, err = handle.Write(append(blob, '\n'))
	return err
}

// Events returns every journal entry, oldest first. A missing journal is
// empty, and malformed lines are skipped.
func Events() ([]Event, error) {
	handle, err := os.Open(Location())
	if errors.Is(err, os.ErrNotExist) {
		return []Event{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	result := make([]Event, 0, 20)
	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		var event Event
		if json.Unmarshal(scanner.Bytes(), &event) != nil {
			common.Trace("skipping malformed journal line %q", scanner.Text())
			continue
		}
		result = append(result, event)
	}
	return result, scanner.Err()
}
