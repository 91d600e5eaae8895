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

package fileutils

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

type embedConfiguration struct {
	FS          fs.FS
	OverrideDir string
}

// EmbedCfg is the process wide asset lookup configuration
var EmbedCfg embedConfiguration

// SetEmbedConfiguration registers the embedded assets and an optional
// directory whose files take precedence over them
func SetEmbedConfiguration(embedFS fs.FS, overrideDir string) {
	EmbedCfg.FS = embedFS
	EmbedCfg.OverrideDir = overrideDir
}

// GetAssetReader opens an asset, looking first in the override directory and
// then in the embedded filesystem
func GetAssetReader(name string) (io.ReadCloser, error) {
	if EmbedCfg.OverrideDir != "" {
		f, err := os.Open(filepath.Join(EmbedCfg.OverrideDir, name))
		if err == nil {
			log.Debugf("Using asset %s from %s", name, EmbedCfg.OverrideDir)
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open asset %s: %w", name, err)
		}
	}
	if EmbedCfg.FS == nil {
		return nil, fmt.Errorf("asset %s not found: no embedded filesystem configured", name)
	}
	log.Debugf("Looking for asset %s in embed fs", name)
	f, err := EmbedCfg.FS.Open(path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("asset %s not found: %w", name, err)
	}
	return f, nil
}

// ReadAsset returns the full content of an asset
func ReadAsset(name string) ([]byte, error) {
	f, err := GetAssetReader(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// CopyAsset copies an asset into dstDir keeping its base name
func CopyAsset(name, dstDir string) error {
	src, err := GetAssetReader(name)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(filepath.Join(dstDir, path.Base(name)))
	if err != nil {
		return fmt.Errorf("failed to copy asset %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy asset %s: %w", name, err)
	}
	return dst.Close()
}

// GetReader opens a local file or an http(s) URL
func GetReader(location string) (io.ReadCloser, error) {
	var f io.ReadCloser
	u, err := url.Parse(location)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		f, err = getBodyForURL(location)
	} else {
		f, err = os.Open(location)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", location, err)
	}
	return f, nil
}

// getBodyForURL reads an URL and returns a reader
func getBodyForURL(stringURL string) (io.ReadCloser, error) {
	u, err := url.ParseRequestURI(stringURL)
	if err != nil {
		return nil, err
	}
	r, err := http.Get(stringURL)
	if err != nil {
		return nil, err
	}
	if r.StatusCode != http.StatusOK {
		r.Body.Close()
		return nil, fmt.Errorf("error requesting %s: %d", u, r.StatusCode)
	}
	return r.Body, nil
}
