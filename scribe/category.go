// Package scribe turns raw working-tree changes into a one-line commit
// message: it buckets status entries, classifies paths by extension,
// scans diffs for change indicators, and composes the final message.
package scribe

import (
	"path/filepath"
	"strings"
)

// Category is a coarse file-type bucket used to group changes in the
// synthesized message.
type Category string

const (
	CategoryNotebooks Category = "notebooks"
	CategoryCode      Category = "code"
	CategoryData      Category = "data"
	CategoryModels    Category = "models"
	CategoryDocs      Category = "docs"
	CategoryConfig    Category = "config"
	CategoryWeb       Category = "web"
	CategoryImages    Category = "images"
	CategorySQL       Category = "sql"
	CategoryOther     Category = "other"
)

// partOrder fixes the order categories appear in a message.
var partOrder = []Category{
	CategoryNotebooks,
	CategoryCode,
	CategoryData,
	CategoryModels,
	CategoryDocs,
	CategoryConfig,
	CategoryWeb,
	CategoryImages,
	CategorySQL,
	CategoryOther,
}

// Classifier maps paths to categories by extension. Classification never
// looks at file contents, so it stays cheap and total.
type Classifier struct {
	byExt map[string]Category
}

// NewClassifier builds a classifier from a category → extensions table.
func NewClassifier(table map[Category][]string) *Classifier {
	byExt := make(map[string]Category)
	for cat, exts := range table {
		for _, ext := range exts {
			byExt[strings.ToLower(ext)] = cat
		}
	}
	return &Classifier{byExt: byExt}
}

// Classify returns the category for a path, falling back to CategoryOther
// for unknown extensions.
func (c *Classifier) Classify(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	if cat, ok := c.byExt[ext]; ok {
		return cat
	}
	return CategoryOther
}
