// Package models defines the data types shared across the course pipeline.
package models

// CourseRecord represents a single scraped course row.
type CourseRecord struct {
	Term            string
	CatalogYear     string
	Prefix          string
	Number          string
	Title           string
	Description     string
	Units           string
	SectionsOffered string
	URL             string
}

// CourseFieldNames returns the CSV column order for scraped courses.
func CourseFieldNames() []string {
	return []string{
		"term",
		"catalog_year",
		"prefix",
		"number",
		"title",
		"description",
		"units",
		"sections_offered",
		"url",
	}
}

// ToRow converts the record to a CSV row keyed by CourseFieldNames.
func (c CourseRecord) ToRow() map[string]string {
	return map[string]string{
		"term":             c.Term,
		"catalog_year":     c.CatalogYear,
		"prefix":           c.Prefix,
		"number":           c.Number,
		"title":            c.Title,
		"description":      c.Description,
		"units":            c.Units,
		"sections_offered": c.SectionsOffered,
		"url":              c.URL,
	}
}
