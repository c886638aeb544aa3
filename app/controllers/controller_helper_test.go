package controllers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := buildPagination(1, 10, 25, "totalArticles")
	assert.Equal(t, 1, p["currentPage"])
	assert.Equal(t, 3, p["totalPages"])
	assert.Equal(t, int64(25), p["totalArticles"])
	assert.Equal(t, true, p["hasNextPage"])
	assert.Equal(t, false, p["hasPrevPage"])

	p = buildPagination(3, 10, 25, "totalArticles")
	assert.Equal(t, false, p["hasNextPage"])
	assert.Equal(t, true, p["hasPrevPage"])

	p = buildPagination(1, 10, 0, "totalComments")
	assert.Equal(t, 0, p["totalPages"])
	assert.Equal(t, false, p["hasNextPage"])
	assert.Equal(t, false, p["hasPrevPage"])
}

func TestIssueFilePath(t *testing.T) {
	t.Setenv("EPAPER_DIR", "uploads/epaper")

	assert.Equal(t, filepath.Join("uploads/epaper", "a.pdf"), issueFilePath("a.pdf"))
	assert.Equal(t, filepath.Join("uploads/epaper", "a.pdf"), issueFilePath("/a.pdf"))
	// Paths stored with the root prefix resolve to the same file.
	assert.Equal(t, filepath.Join("uploads/epaper", "a.pdf"), issueFilePath("uploads/epaper/a.pdf"))
	// Traversal attempts stay inside the tree.
	assert.Equal(t, filepath.Join("uploads/epaper", "etc/passwd"), issueFilePath("../../etc/passwd"))
	assert.Equal(t, filepath.Join("uploads/epaper", "b.pdf"), issueFilePath("a/../../b.pdf"))
}
