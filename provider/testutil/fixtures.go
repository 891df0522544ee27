package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CareerDocuments returns a small document set about a fictional engineer
func CareerDocuments() map[string]string {
	return map[string]string{
		"experience.md": "# Experience\n\n" +
			"Senior Software Engineer at Northwind (2021-2024). Led the migration of the billing " +
			"platform to Go microservices, cutting p99 latency by 40 percent.\n\n" +
			"Software Engineer at Contoso (2018-2021). Built data pipelines in Python and Kafka.",
		"skills.txt": "Languages: Go, Python, TypeScript.\n" +
			"Leadership: mentored six engineers and ran the backend guild.\n" +
			"Cloud: Kubernetes, Terraform, AWS.",
		"notes.pdf": "not a supported format",
	}
}

// WriteDocuments writes docs into a fresh temp directory and returns its path
func WriteDocuments(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range docs {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return dir
}
