package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"path"
	"strings"

	"lost-found/errors"
)

//go:embed censored/*.txt
var censoredFS embed.FS

// CensoredDir is the embedded directory holding one word list per language.
const CensoredDir = "censored"

// CensoredData is the merged word list and the languages it came from.
type CensoredData struct {
	Words     []string
	Languages []string
}

// CensoredLoader reads word lists, one word per line, from .txt files.
type CensoredLoader struct {
	fs fs.FS
}

func NewCensoredLoader(f fs.FS) *CensoredLoader {
	return &CensoredLoader{fs: f}
}

// NewEmbeddedLoader reads the word lists shipped with the binary.
func NewEmbeddedLoader() *CensoredLoader {
	return NewCensoredLoader(censoredFS)
}

// LoadAll merges every .txt file of dir, the file name being the language.
func (l *CensoredLoader) LoadAll(dir string) (*CensoredData, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			return nil, errors.ErrOnlyCensoredFiles
		}
		if !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		// Scanner copes with \r\n endings.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				unique[line] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(unique) == 0 {
		return nil, errors.ErrEmptyWords
	}
	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	return &CensoredData{Words: words, Languages: languages}, nil
}
