package textstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Makepad-fr/eggventory/internal/model"
)

// Flat text storage. Single file, human-readable, one stock type block after
// another. No locking; fine for a local single-user CLI.

const DefaultFileName = "eggventory.txt"

var ErrMalformedLine = errors.New("malformed line")

// Store reads and writes the stock list file.
type Store struct {
	path string
	log  *zap.Logger
}

// New returns a store for path. An empty path means DefaultFileName in the
// working directory.
func New(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path, log: log.Named("textstore")}, nil
}

func (s *Store) Path() string { return s.path }

// ReadText returns the raw file content. ok is false when the file does not exist.
func (s *Store) ReadText() (text string, ok bool, err error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read file: %w", err)
	}
	return string(b), true, nil
}

// WriteText replaces the file content.
func (s *Store) WriteText(text string) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Load reads the stock list. A missing file yields a fresh list with only the
// default stock type. The result always starts with the default stock type.
func (s *Store) Load() (*model.StockList, error) {
	text, ok, err := s.ReadText()
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Info("data file does not exist, starting with an empty inventory", zap.String("path", s.path))
		return model.NewStockList(), nil
	}
	l, err := Decode(strings.NewReader(text), s.log)
	if err != nil {
		return nil, err
	}
	return EnsureDefault(l), nil
}

func (s *Store) Save(l *model.StockList) error {
	return s.WriteText(l.PersistString())
}

// EnsureDefault puts a default stock type at the front of l when it is missing.
func EnsureDefault(l *model.StockList) *model.StockList {
	types := l.StockTypes()
	if len(types) == 0 || types[0].Name() != model.DefaultStockType {
		l.PrependStockType(model.NewStockType(model.DefaultStockType))
	}
	return l
}

// Decode parses persisted text back into a stock list, keeping the order of
// stock types and stocks. Malformed lines are logged and skipped; stocks under
// a malformed header or before any header go to the default stock type. Only
// read errors are returned.
func Decode(r io.Reader, log *zap.Logger) (*model.StockList, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var (
		types   []*model.StockType
		current *model.StockType
		lineNo  int
	)
	// fallback returns the first default stock type, creating one at the front.
	fallback := func() *model.StockType {
		for _, t := range types {
			if t.Name() == model.DefaultStockType {
				return t
			}
		}
		def := model.NewStockType(model.DefaultStockType)
		types = append([]*model.StockType{def}, types...)
		return def
	}

	br := bufio.NewReader(r)
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")

		switch {
		case line == "":
		case line[0] == model.HeaderPrefix:
			name, err := model.UnescapeField(line[1:])
			if err != nil {
				log.Warn("skipping stock type header", zap.Int("line", lineNo), zap.Error(fmt.Errorf("%w: %v", ErrMalformedLine, err)))
				current = nil
				break
			}
			current = model.NewStockType(name)
			types = append(types, current)
		default:
			code, qty, desc, err := parseStockLine(line)
			if err != nil {
				log.Warn("skipping stock line", zap.Int("line", lineNo), zap.Error(err))
				break
			}
			if current == nil {
				current = fallback()
			}
			current.AddStock(code, qty, desc)
		}

		if readErr == io.EOF {
			break
		}
	}
	return model.NewStockListOf(types...), nil
}

func parseStockLine(line string) (code string, qty int, desc string, err error) {
	fields, err := model.SplitFields(line)
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if len(fields) != 3 {
		return "", 0, "", fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedLine, len(fields))
	}
	qty, err = strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: bad quantity %q", ErrMalformedLine, fields[1])
	}
	return fields[0], qty, fields[2], nil
}
