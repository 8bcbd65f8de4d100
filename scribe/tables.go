package scribe

// DefaultCategories returns the built-in extension → category table.
func DefaultCategories() map[Category][]string {
	return map[Category][]string{
		CategoryNotebooks: {".ipynb"},
		CategoryCode:      {".py", ".go"},
		CategoryData:      {".csv", ".json", ".xlsx", ".xls", ".parquet", ".pkl", ".pickle"},
		CategoryModels:    {".h5", ".keras", ".pt", ".pth", ".onnx", ".joblib", ".model"},
		CategoryDocs:      {".md", ".txt", ".rst", ".pdf", ".docx"},
		CategoryConfig:    {".yaml", ".yml", ".toml", ".ini", ".cfg", ".config"},
		CategoryWeb:       {".html", ".css", ".js", ".jsx", ".ts", ".tsx"},
		CategoryImages:    {".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"},
		CategorySQL:       {".sql"},
	}
}

// DefaultNotebookRules returns the built-in indicator rules for notebook
// diffs, highest priority first.
func DefaultNotebookRules() []Rule {
	return []Rule{
		{Indicator: "visualizations", Any: []string{"matplotlib", "plt.", "seaborn"}},
		{Indicator: "model training", Any: []string{"train", "fit", "model"}},
		{Indicator: "dependencies", All: []string{"import", "+"}},
		{Indicator: "data loading", Any: []string{"read_csv", "load"}},
		{Indicator: "data cleaning", Any: []string{"clean", "fillna", "dropna"}},
		{Indicator: "feature engineering", Any: []string{"feature", "engineer"}},
		{Indicator: "evaluation", Any: []string{"accuracy", "score", "metric"}},
	}
}

// DefaultCodeRules returns the built-in indicator rules for code diffs,
// highest priority first. Structural rules come before the content
// families shared with notebooks; when nothing hits, the analyzer falls
// back to the added-vs-removed size heuristic.
func DefaultCodeRules() []Rule {
	return []Rule{
		{Indicator: "new functions", Any: []string{"+def ", "+func "}},
		{Indicator: "new types", Any: []string{"+class ", "+type ", "+struct "}},
		{Indicator: "imports", Any: []string{"+import"}},
		{Indicator: "bug fixes", Any: []string{"fix", "bug"}},
		{Indicator: "visualizations", Any: []string{"matplotlib", "plt.", "seaborn"}},
		{Indicator: "model training", Any: []string{"train", "fit", "model"}},
		{Indicator: "data loading", Any: []string{"read_csv", "load"}},
		{Indicator: "data cleaning", Any: []string{"clean", "fillna", "dropna"}},
		{Indicator: "feature engineering", Any: []string{"feature", "engineer"}},
		{Indicator: "evaluation", Any: []string{"accuracy", "score", "metric"}},
	}
}
