package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"courseaudit/internal/models"
)

// ErrNoCourseHeader indicates a course page without a parsable header line.
var ErrNoCourseHeader = errors.New("no course header found on page")

var (
	// courseHeaderPattern parses "PREFIX 123 - Course Title" header lines.
	courseHeaderPattern = regexp.MustCompile(`^([A-Z&]{2,6})\s+(\d{3}[A-Z]?)\s*-\s*(.+)$`)
	courseLinkPattern   = regexp.MustCompile(`href="([^"]*Courses/[^"]+)"`)
	tagPattern          = regexp.MustCompile(`(?s)<[^>]*>`)
	scriptPattern       = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
)

// ResultsURL builds the course search URL for a prefix and term code.
func ResultsURL(base, prefix string, termCode int) string {
	return fmt.Sprintf("%s?subject=%s&catalogTerm=%d", base, url.QueryEscape(prefix), termCode)
}

// ParseCourseLinks extracts course detail links from a results page, in
// page order with duplicates removed. Relative links are resolved against
// the base URL.
func ParseCourseLinks(html, base string) []string {
	matches := courseLinkPattern.FindAllStringSubmatch(html, -1)

	baseURL, err := url.Parse(base)
	if err != nil {
		baseURL = nil
	}

	seen := make(map[string]bool)

	var links []string

	for _, m := range matches {
		link := m[1]

		if baseURL != nil {
			if ref, err := url.Parse(link); err == nil {
				link = baseURL.ResolveReference(ref).String()
			}
		}

		if seen[link] {
			continue
		}

		seen[link] = true

		links = append(links, link)
	}

	return links
}

// ParseCoursePage extracts a course record from a course detail page.
// The page is reduced to text lines; the first line matching the course
// header pattern supplies prefix, number, and title, and labeled fields
// ("Description", "Units", "Sections offered") are read as the text
// following their label line.
func ParseCoursePage(html, pageURL, term string) (models.CourseRecord, error) {
	lines := pageLines(html)

	record := models.CourseRecord{
		Term: term,
		URL:  pageURL,
	}

	headerIdx := -1

	for i, line := range lines {
		if m := courseHeaderPattern.FindStringSubmatch(line); m != nil {
			record.Prefix = m[1]
			record.Number = m[2]
			record.Title = strings.TrimSpace(m[3])
			headerIdx = i

			break
		}
	}

	if headerIdx < 0 {
		return models.CourseRecord{}, fmt.Errorf("%w: %s", ErrNoCourseHeader, pageURL)
	}

	record.CatalogYear = textAfterLabel(lines, "Catalog Year")
	record.Description = textAfterLabel(lines, "Description")
	record.Units = textAfterLabel(lines, "Units")
	record.SectionsOffered = textAfterLabel(lines, "Sections offered")

	return record, nil
}

// pageLines strips markup and returns the page's non-empty text lines.
func pageLines(html string) []string {
	text := scriptPattern.ReplaceAllString(html, "\n")
	// Tag boundaries become line breaks so adjacent elements don't fuse.
	text = tagPattern.ReplaceAllString(text, "\n")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&nbsp;", " ")

	var lines []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// textAfterLabel returns the first non-empty line following a line equal to
// the label (with or without a trailing colon). Missing labels yield "".
func textAfterLabel(lines []string, label string) string {
	for i, line := range lines {
		if !strings.EqualFold(line, label) && !strings.EqualFold(line, label+":") {
			continue
		}

		if i+1 < len(lines) {
			return lines[i+1]
		}

		return ""
	}

	return ""
}
