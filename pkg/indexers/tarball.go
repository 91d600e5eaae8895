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

package indexers

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cloud-bulldozer/go-commons/v2/indexers"
	"github.com/ocp-visualizer/ocp-visualizer/pkg/metadata"
	log "github.com/sirupsen/logrus"
)

// CreateTarball packs every file written by the local indexer below metricsDir
// into a gzipped tarball
func CreateTarball(metricsDir, tarballName string) error {
	tarball, err := os.Create(tarballName)
	if err != nil {
		return fmt.Errorf("could not create tarball file: %w", err)
	}
	gzipWriter := gzip.NewWriter(tarball)
	tarWriter := tar.NewWriter(gzipWriter)
	err = filepath.WalkDir(metricsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		if hdr.Name, err = filepath.Rel(metricsDir, path); err != nil {
			return err
		}
		if err := tarWriter.WriteHeader(hdr); err != nil {
			return fmt.Errorf("could not write file header into tarball: %w", err)
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tarWriter, f); err != nil {
			return fmt.Errorf("could not write file into tarball: %w", err)
		}
		return nil
	})
	// closed innermost first so every stream is flushed
	closeErr := errors.Join(tarWriter.Close(), gzipWriter.Close(), tarball.Close())
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}
	log.Infof("Summaries tarball generated at %s", tarballName)
	return nil
}

// ImportTarball indexes the summaries of a tarball built by CreateTarball
func (p *Publisher) ImportTarball(tarball string) error {
	if p == nil {
		return fmt.Errorf("indexing is disabled, nothing to import %s into", tarball)
	}
	log.Infof("Importing tarball: %v", tarball)
	f, err := os.Open(tarball)
	if err != nil {
		return fmt.Errorf("could not open tarball file: %w", err)
	}
	defer f.Close()
	gzipReader, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("could not create gzip reader: %w", err)
	}
	tr := tar.NewReader(gzipReader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tarball read error: %w", err)
		}
		var docs []any
		if err := json.NewDecoder(tr).Decode(&docs); err != nil {
			return fmt.Errorf("decoding %s: %w", hdr.Name, err)
		}
		log.Infof("Reading summaries from %s", hdr.Name)
		resp, err := p.indexer.Index(docs, indexers.IndexingOpts{MetricName: metadata.SummaryMetricName})
		if err != nil {
			return err
		}
		log.Info(resp)
	}
}
