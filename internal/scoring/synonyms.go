package scoring

// termGroup associates a base technology with terms that commonly signal it
// in job descriptions.
type termGroup struct {
	base  string
	terms []string
}

// relatedTerms is the fixed technology synonym table. A candidate containing
// the base skill earns a bonus for every related term found in the job text.
var relatedTerms = []termGroup{
	{base: "python", terms: []string{"django", "flask", "pandas", "numpy", "scikit"}},
	{base: "javascript", terms: []string{"js", "react", "angular", "vue", "node"}},
	{base: "java", terms: []string{"spring", "maven", "gradle"}},
	{base: "sql", terms: []string{"database", "mysql", "postgresql", "oracle"}},
	{base: "cloud", terms: []string{"aws", "azure", "gcp", "kubernetes", "docker"}},
	{base: "machine learning", terms: []string{"ml", "ai", "neural", "tensorflow", "pytorch"}},
	{base: "frontend", terms: []string{"react", "angular", "vue", "css", "html"}},
	{base: "backend", terms: []string{"api", "server", "database", "microservices"}},
	{base: "devops", terms: []string{"ci/cd", "deployment", "automation", "infrastructure"}},
}
