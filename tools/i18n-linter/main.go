// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every translation key passed to i18n.T exists in
// each locale file, and lists keys the locales carry but no code uses.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir  = "internal/i18n/locales"
	projectRoot = "."
)

var keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// report is the outcome of one lint run.
type report struct {
	Used     int
	Missing  map[string][]string // locale file -> used keys it lacks
	Orphaned map[string][]string // locale file -> keys nothing uses
}

func (r report) failed() bool {
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d translation keys used in source code\n", r.Used)
	for _, file := range sortedFiles(r.Missing) {
		for _, k := range r.Missing[file] {
			fmt.Printf("missing  %s: %s\n", filepath.Base(file), k)
		}
	}
	for _, file := range sortedFiles(r.Orphaned) {
		for _, k := range r.Orphaned[file] {
			fmt.Printf("orphaned %s: %s\n", filepath.Base(file), k)
		}
	}
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("scan sources: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	if len(files) == 0 {
		return report{}, fmt.Errorf("no locale files in %s", locales)
	}

	r := report{Used: len(used), Missing: map[string][]string{}, Orphaned: map[string][]string{}}
	for _, file := range files {
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("load %s: %w", file, err)
		}
		r.Missing[file] = difference(used, keys)
		r.Orphaned[file] = difference(keys, used)
	}
	return r, nil
}

// findUsedKeys collects the literal keys of i18n.T calls in non-test Go
// files below root, skipping tools and example trees.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale returns the flattened keys of a locale file.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	return keys, nil
}

func flattenYAML(prefix string, v any, keys map[string]struct{}) {
	m, ok := v.(map[string]any)
	if !ok {
		keys[prefix] = struct{}{}
		return
	}
	for k, child := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flattenYAML(key, child, keys)
	}
}

// difference returns the sorted keys of a that b lacks.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func sortedFiles(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for f := range m {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
