package setfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/keyset"
	"github.com/npillmayer/keyset/ordering"
)

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Set tables are line oriented:
//
//	# comment
//	midi:     1 2 7 12
//	audio:    2 3 12
//
// Every non-blank, non-comment line declares one named set. Keys are
// non-negative integers and must be listed in strictly ascending order;
// an unsorted or duplicated key is a table error, the loader never sorts
// on behalf of the table author.

var (
	// ErrNoRegularFile signals that a path does not name a regular file.
	ErrNoRegularFile = errors.New("setfile: not a regular file")
	// ErrBadSyntax signals a malformed table line.
	ErrBadSyntax = errors.New("setfile: malformed set table")
	// ErrNoSuchSet signals a lookup for a set name the table does not declare.
	ErrNoSuchSet = errors.New("setfile: no set with this name")
)

// SyntaxError reports a malformed table line. It matches ErrBadSyntax
// under errors.Is.
type SyntaxError struct {
	Line   int // 1-based line number within the table file
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: line %d: %s", ErrBadSyntax, e.Line, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return ErrBadSyntax
}

// Entry is one named key set of a table.
type Entry struct {
	Name string
	Keys keyset.Sorted[uint64]
}

// Table represents a set table which is loaded from an OS file.
//
// A table returned by Load may be subscribed to right away; entries arrive
// as the background loader finishes them. Lookup methods require the load
// to have completed and will block until it has.
type Table struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async table loading
	done chan struct{}  // closed when the loader goroutine finishes

	mu        sync.Mutex
	entries   map[string]Entry
	names     []string // declaration order
	lastError error    // remember last I/O or table error
}

// Load reads a file, which must be a set table, and loads its sets.
//
// Opening of the file is always done synchronously; parsing and validation
// happen in the background, transparent to the client. Clients either
// subscribe to entries with Sub or wait for the complete table with Await.
func Load(name string) (*Table, error) {
	t, err := openFile(name)
	if err != nil {
		return nil, err
	}
	go t.loadAllEntries()
	return t, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*Table, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNoRegularFile, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	t := &Table{
		path:    name,
		info:    fi,
		file:    file,
		cast:    caster.New(nil), // we will broadcast entries as they are loaded
		done:    make(chan struct{}),
		entries: make(map[string]Entry),
	}
	return t, nil
}

// Await blocks until the background load has finished and returns the first
// error the loader ran into, if any.
func (t *Table) Await(ctx context.Context) error {
	select {
	case <-t.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastError
}

// Sub subscribes to table entries. Entries already loaded before the call
// are replayed first, then entries arrive as the loader finishes them; every
// entry is delivered exactly once. The returned channel is closed when the
// load finishes or ctx is cancelled.
func (t *Table) Sub(ctx context.Context) <-chan Entry {
	out := make(chan Entry)
	// Snapshot and broadcaster registration happen under the same lock the
	// loader takes before publishing, so no entry can fall between them.
	t.mu.Lock()
	snapshot := make([]Entry, 0, len(t.names))
	for _, name := range t.names {
		snapshot = append(snapshot, t.entries[name])
	}
	ch, ok := t.cast.Sub(ctx, 1)
	t.mu.Unlock()
	go func() {
		defer close(out)
		sent := make(map[string]bool)
		emit := func(entry Entry) bool {
			if sent[entry.Name] { // snapshot overlap with broadcast
				return true
			}
			sent[entry.Name] = true
			select {
			case out <- entry:
				return true
			case <-ctx.Done():
				return false
			}
		}
		for _, entry := range snapshot {
			if !emit(entry) {
				if ok {
					t.cast.Unsub(ch)
				}
				return
			}
		}
		if !ok { // broadcaster already closed, snapshot was complete
			return
		}
		for m := range ch {
			entry, isEntry := m.(Entry)
			if !isEntry {
				continue
			}
			if !emit(entry) {
				t.cast.Unsub(ch)
				return
			}
		}
	}()
	return out
}

// Set returns the key set declared under a name, blocking until the load
// has finished. Returns ErrNoSuchSet for undeclared names.
func (t *Table) Set(ctx context.Context, name string) (keyset.Sorted[uint64], error) {
	if err := t.Await(ctx); err != nil {
		return keyset.Sorted[uint64]{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.entries[name]
	if !ok {
		return keyset.Sorted[uint64]{}, fmt.Errorf("%w: %q", ErrNoSuchSet, name)
	}
	return entry.Keys, nil
}

// Names returns all declared set names in declaration order, blocking until
// the load has finished.
func (t *Table) Names(ctx context.Context) ([]string, error) {
	if err := t.Await(ctx); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names, nil
}

// --- Table loading goroutine -----------------------------------------------

func (t *Table) loadAllEntries() {
	defer func() {
		t.cast.Close()
		close(t.done)
		t.file.Close()
	}()
	scanner := bufio.NewScanner(t.file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		entry, ok, err := t.parseLine(scanner.Text(), lineno)
		if err != nil {
			t.fail(err)
			return
		}
		if !ok { // blank line or comment
			continue
		}
		t.mu.Lock()
		t.entries[entry.Name] = entry
		t.names = append(t.names, entry.Name)
		t.mu.Unlock()
		tracer().Debugf("set table: loaded set %q with %d keys", entry.Name, entry.Keys.Len())
		t.cast.Pub(entry)
	}
	if err := scanner.Err(); err != nil {
		t.fail(fmt.Errorf("error loading set table: %w", err))
	}
}

func (t *Table) fail(err error) {
	tracer().Errorf("set table %s: %v", t.path, err)
	t.mu.Lock()
	t.lastError = err
	t.mu.Unlock()
}

// parseLine parses one table line into an entry. ok is false for lines
// without content (blank lines and comments).
func (t *Table) parseLine(line string, lineno int) (entry Entry, ok bool, err error) {
	text := strings.TrimSpace(line)
	if text == "" || strings.HasPrefix(text, "#") {
		return Entry{}, false, nil
	}
	name, keypart, found := strings.Cut(text, ":")
	if !found {
		return Entry{}, false, &SyntaxError{Line: lineno, Reason: "missing ':' after set name"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, false, &SyntaxError{Line: lineno, Reason: "empty set name"}
	}
	t.mu.Lock()
	_, duplicate := t.entries[name]
	t.mu.Unlock()
	if duplicate {
		return Entry{}, false, &SyntaxError{Line: lineno, Reason: fmt.Sprintf("duplicate set name %q", name)}
	}
	builder := keyset.NewBuilder[uint64]()
	for _, field := range strings.Fields(keypart) {
		key, convErr := strconv.ParseUint(field, 10, 64)
		if convErr != nil {
			return Entry{}, false, &SyntaxError{
				Line:   lineno,
				Reason: fmt.Sprintf("key %q is not a non-negative integer", field),
			}
		}
		if appendErr := builder.Append(key); appendErr != nil {
			return Entry{}, false, appendErr
		}
	}
	sorted, err := keyset.Validate(builder.List(), ordering.Natural[uint64]())
	if err != nil {
		// surface the violation to the table author, never sort for them
		return Entry{}, false, fmt.Errorf("line %d: set %q: %w", lineno, name, err)
	}
	return Entry{Name: name, Keys: sorted}, true, nil
}
