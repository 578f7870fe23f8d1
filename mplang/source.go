package mplang

import (
	"os"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func loadSource(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(path, string(content)), nil
}
