package mplang

import (
	"fmt"
	"path/filepath"
	"slices"
)

type importRecord struct {
	index int
	path  string
}

// collectImports scans adjacent token pairs for (Import, Str) directives.
// Imports must form a contiguous block at the very top of the stream, and
// a path may appear only once.
func collectImports(tokens []*Token) ([]importRecord, error) {
	var records []importRecord
	seen := make(map[string]bool)
	next := 0
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind != TokenImport {
			continue
		}
		t := tokens[i+1]
		if t.Kind != TokenStr {
			return nil, WithPos(ErrImportNotString, t.Pos)
		}
		if seen[t.Text] {
			return nil, WithPos(fmt.Errorf("%w: %s", ErrDuplicateImport, t.Text), t.Pos)
		}
		if i != next {
			return nil, WithPos(ErrImportAfterInstruction, t.Pos)
		}
		seen[t.Text] = true
		records = append(records, importRecord{
			index: i,
			path:  t.Text,
		})
		next = i + 2
	}
	return records, nil
}

// TokenizeFile lexes the main file and splices each imported file's tokens
// in place of its (Import, Str) pair. Splicing runs from the highest
// recorded index down so earlier indices stay valid. The result carries
// exactly one EOF, the main file's own.
func TokenizeFile(path string) ([]*Token, error) {
	tokens, err := lexFile(path)
	if err != nil {
		return nil, err
	}

	records, err := collectImports(tokens)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b importRecord) int {
		return b.index - a.index
	})

	dir := filepath.Dir(path)
	for _, record := range records {
		imported, err := lexFile(filepath.Join(dir, record.path))
		if err != nil {
			// IO errors point at the import directive, scan errors keep
			// the imported file's own position.
			return nil, WithPos(err, tokens[record.index].Pos)
		}
		imported = imported[:len(imported)-1] // drop the imported EOF

		merged := make([]*Token, 0, len(tokens)+len(imported)-2)
		merged = append(merged, tokens[:record.index]...)
		merged = append(merged, imported...)
		merged = append(merged, tokens[record.index+2:]...)
		tokens = merged
	}

	return tokens, nil
}

func lexFile(path string) ([]*Token, error) {
	src, err := loadSource(path)
	if err != nil {
		return nil, err
	}
	return LexSource(src)
}
