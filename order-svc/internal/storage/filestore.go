package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	CustomersTable   = "customers.txt"
	OwnersTable      = "owners.txt"
	AdminsTable      = "admin.txt"
	RestaurantsTable = "restaurants.txt"
	OrdersTable      = "orders.txt"
)

const firstID = 100

// FileStore keeps every table as a pipe-delimited text file under one directory.
// Writes either append a single line or truncate and rewrite the whole table.
type FileStore struct {
	dir string
	log zerolog.Logger
}

func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	return &FileStore{dir: dir, log: log.With().Str("component", "filestore").Logger()}
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(table string) string {
	return filepath.Join(s.dir, table)
}

// readLines returns the non-blank lines of a table. A missing file is an empty table.
func (s *FileStore) readLines(table string) ([]string, error) {
	f, err := os.Open(s.path(table))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", table, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	return lines, nil
}

func (s *FileStore) writeLines(table string, lines []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.Create(s.path(table))
	if err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", table, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", table, err)
	}
	return f.Close()
}

func (s *FileStore) appendLine(table, line string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.OpenFile(s.path(table), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", table, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", table, err)
	}
	return f.Close()
}

// NextID returns the largest leading id in the table plus one, or 100 when
// the table is empty or missing. Lines whose id does not parse are ignored.
func (s *FileStore) NextID(table string) (int, error) {
	lines, err := s.readLines(table)
	if err != nil {
		return 0, err
	}

	maxID := 0
	found := false
	for _, line := range lines {
		head, _, _ := strings.Cut(line, fieldSep)
		id, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			continue
		}
		if !found || id > maxID {
			maxID = id
			found = true
		}
	}
	if !found {
		return firstID, nil
	}
	return maxID + 1, nil
}

// loadTable decodes every line with decode, skipping the ones that fail.
func loadTable[T any](s *FileStore, table string, decode func(string) (T, error)) ([]T, error) {
	lines, err := s.readLines(table)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(lines))
	for i, line := range lines {
		record, err := decode(line)
		if err != nil {
			s.log.Warn().
				Str("table", table).
				Int("line", i+1).
				Err(err).
				Msg("skipping malformed record")
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func saveTable[T any](s *FileStore, table string, records []T, encode func(T) string) error {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, encode(record))
	}
	return s.writeLines(table, lines)
}
