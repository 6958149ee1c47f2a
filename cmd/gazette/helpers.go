package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"gazette/internal/identity"
	"gazette/internal/ingest"
)

// readPeopleFile loads a batch of people from either a grant XML document or
// a JSON array of person objects, chosen by file extension.
func readPeopleFile(path string) ([]identity.Person, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".xml") {
		people, err := ingest.ParseGrants(file)
		if err != nil {
			return nil, fmt.Errorf("parse grant xml: %w", err)
		}
		return people, nil
	}

	var people []identity.Person
	if err := json.NewDecoder(file).Decode(&people); err != nil {
		return nil, fmt.Errorf("parse people json: %w", err)
	}
	return people, nil
}

func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
}
