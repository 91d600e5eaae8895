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

package util_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ocp-visualizer/ocp-visualizer/pkg/util"
)

func TestRenderTemplate(t *testing.T) {
	templateContent := []byte("output:\n  directory: {{ .DIR }}\n")
	rendered, err := util.RenderTemplate(templateContent, map[string]string{"DIR": "/tmp/docs"}, util.MissingKeyError)
	if err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}

	expected := "output:\n  directory: /tmp/docs\n"
	if string(rendered) != expected {
		t.Fatalf("unexpected rendered template. want %q, got %q", expected, rendered)
	}

	_, err = util.RenderTemplate(templateContent, map[string]string{}, util.MissingKeyError)
	if err == nil {
		t.Fatalf("expected error due to missing key, got nil")
	}
}

func TestRenderTemplateWithSprig(t *testing.T) {
	templateContent := []byte(`user: {{ .USER | default "ocp" | upper }}` + "\n")
	rendered, err := util.RenderTemplate(templateContent, map[string]interface{}{}, util.MissingKeyDefault)
	if err != nil {
		t.Fatalf("RenderTemplate with sprig returned error: %v", err)
	}
	if string(rendered) != "user: OCP\n" {
		t.Fatalf("unexpected rendered template: %q", rendered)
	}
}

func TestEnvToMap(t *testing.T) {
	t.Setenv("OCP_VISUALIZER_ENV_MAP", "value")
	envMap := util.EnvToMap()

	got, ok := envMap["OCP_VISUALIZER_ENV_MAP"].(string)
	if !ok || got != "value" {
		t.Fatalf("expected env map to contain key with value %q, got %v", "value", envMap["OCP_VISUALIZER_ENV_MAP"])
	}
}

func TestCreateFile(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "example.txt")
	content := []byte("hello world")

	if err := util.CreateFile(filePath, content); err != nil {
		t.Fatalf("CreateFile returned error: %v", err)
	}
	// overwriting must work too
	if err := util.CreateFile(filePath, content); err != nil {
		t.Fatalf("CreateFile on existing file returned error: %v", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("failed to read created file: %v", err)
	}
	if string(data) != string(content) {
		t.Fatalf("unexpected file contents. want %q, got %q", string(content), string(data))
	}

	entries, _ := os.ReadDir(tempDir)
	if len(entries) != 1 {
		t.Fatalf("expected only the target file in %s, got %d entries", tempDir, len(entries))
	}
}

func TestCreateFolderIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Acme", "nested")
	for i := 0; i < 2; i++ {
		if err := util.CreateFolder(dir); err != nil {
			t.Fatalf("CreateFolder run %d returned error: %v", i, err)
		}
	}
}

func TestToUpperCamelCase(t *testing.T) {
	cases := map[string]string{
		"acme widgets inc": "AcmeWidgetsInc",
		"ACME corp":        "AcmeCorp",
		"":                 "",
		"  spaced  out ":   "SpacedOut",
	}
	for in, want := range cases {
		if got := util.ToUpperCamelCase(in); got != want {
			t.Errorf("ToUpperCamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	cases := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567"}
	for in, want := range cases {
		if got := util.FormatCount(in); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]int{"workers": 3}
	if err := util.WriteOutput(&buf, data, util.OutputFormatJSON); err != nil {
		t.Fatalf("json output: %v", err)
	}
	if !strings.Contains(buf.String(), `"workers": 3`) {
		t.Fatalf("unexpected json output: %s", buf.String())
	}
	buf.Reset()
	if err := util.WriteOutput(&buf, data, util.OutputFormatYAML); err != nil {
		t.Fatalf("yaml output: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "workers: 3" {
		t.Fatalf("unexpected yaml output: %q", buf.String())
	}
	if err := util.WriteOutput(&buf, data, "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if util.IsValidOutputFormat("xml") || !util.IsValidOutputFormat("text") {
		t.Fatalf("IsValidOutputFormat returned unexpected result")
	}
}
