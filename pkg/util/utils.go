// Copyright 2025 The ocp-visualizer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// CreateFolder creates the given directory tree, succeeding when it already exists
func CreateFolder(folderPath string) error {
	if _, err := os.Stat(folderPath); err == nil {
		log.Infof("Folder already exists: %s", folderPath)
		return nil
	}
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return fmt.Errorf("creating folder %s: %w", folderPath, err)
	}
	log.Infof("Folder created: %s", folderPath)
	return nil
}

// CreateFile writes content to filePath through a temporary file in the same
// directory, so a failed write never leaves a partial file behind
func CreateFile(filePath string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", filePath, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", filePath, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filePath)
}

// ToUpperCamelCase turns "acme widgets inc" into "AcmeWidgetsInc"
func ToUpperCamelCase(s string) string {
	title := cases.Title(language.English)
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		b.WriteString(title.String(word))
	}
	return b.String()
}

// FormatCount groups thousands with commas: 12345 -> "12,345"
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		log.Warnf("Unable to expand %s: %v", path, err)
		return path
	}
	return expanded
}
