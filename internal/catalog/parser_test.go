package catalog

import (
	"errors"
	"reflect"
	"testing"
)

const sampleCoursePage = `
<html><body>
<h1>CS 599 - Advanced Artificial Intelligence</h1>
<div><strong>Catalog Year</strong></div><div>2025-2026</div>
<div><strong>Description</strong></div><div>Covers deep learning and search.</div>
<b>Units</b><span>3</span>
<p>Sections offered</p><p>Fall 2025</p>
</body></html>`

func TestParseCoursePage(t *testing.T) {
	record, err := ParseCoursePage(sampleCoursePage, "https://example.edu/Courses/1", "Fall 2025")
	if err != nil {
		t.Fatalf("ParseCoursePage returned error: %v", err)
	}

	if record.Prefix != "CS" || record.Number != "599" {
		t.Errorf("key = %s %s, want CS 599", record.Prefix, record.Number)
	}

	if record.Title != "Advanced Artificial Intelligence" {
		t.Errorf("title = %q", record.Title)
	}

	if record.CatalogYear != "2025-2026" {
		t.Errorf("catalog year = %q", record.CatalogYear)
	}

	if record.Description != "Covers deep learning and search." {
		t.Errorf("description = %q", record.Description)
	}

	if record.Units != "3" {
		t.Errorf("units = %q", record.Units)
	}

	if record.SectionsOffered != "Fall 2025" {
		t.Errorf("sections offered = %q", record.SectionsOffered)
	}

	if record.Term != "Fall 2025" {
		t.Errorf("term = %q", record.Term)
	}
}

func TestParseCoursePageNoHeader(t *testing.T) {
	_, err := ParseCoursePage("<html><body><p>Not a course</p></body></html>", "u", "t")
	if !errors.Is(err, ErrNoCourseHeader) {
		t.Errorf("err = %v, want ErrNoCourseHeader", err)
	}
}

func TestParseCoursePageLetterSuffixNumber(t *testing.T) {
	page := `<h1>EE 480C - Capstone Design</h1><p>Description</p><p>Team projects.</p>`

	record, err := ParseCoursePage(page, "u", "t")
	if err != nil {
		t.Fatalf("ParseCoursePage returned error: %v", err)
	}

	if record.Number != "480C" {
		t.Errorf("number = %q, want 480C", record.Number)
	}
}

func TestParseCourseLinks(t *testing.T) {
	html := `
<a href="/Courses/course?id=1">One</a>
<a href="/Courses/course?id=2">Two</a>
<a href="/Courses/course?id=1">Duplicate</a>
<a href="/About">Unrelated</a>`

	got := ParseCourseLinks(html, "https://example.edu/Courses")
	want := []string{
		"https://example.edu/Courses/course?id=1",
		"https://example.edu/Courses/course?id=2",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("links = %v, want %v", got, want)
	}
}

func TestResultsURL(t *testing.T) {
	got := ResultsURL("https://example.edu/Courses", "M&S", 1257)
	want := "https://example.edu/Courses?subject=M%26S&catalogTerm=1257"

	if got != want {
		t.Errorf("ResultsURL = %q, want %q", got, want)
	}
}
