package catalog

import (
	"fmt"
	"time"

	"courseaudit/internal/config"
	"courseaudit/internal/models"
)

// Scraper fetches course lists and course pages for (term, prefix)
// combinations, pausing between requests to stay polite to the server.
type Scraper struct {
	client  *Client
	baseURL string
	sleep   time.Duration
}

// NewScraper creates a scraper from the scraper configuration.
func NewScraper(cfg *config.ScraperConfig) *Scraper {
	return &Scraper{
		client:  NewClient(&cfg.Retry),
		baseURL: cfg.BaseURL,
		sleep:   cfg.GetSleep(),
	}
}

// CourseLinks fetches the results page for a prefix and term and returns
// the course detail links found on it.
func (s *Scraper) CourseLinks(prefix string, termCode int) ([]string, error) {
	page, err := s.client.Fetch(ResultsURL(s.baseURL, prefix, termCode))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course list for %s: %w", prefix, err)
	}

	s.politeSleep()

	return ParseCourseLinks(page, s.baseURL), nil
}

// ScrapeCourse fetches and parses one course detail page.
func (s *Scraper) ScrapeCourse(url, term string) (models.CourseRecord, error) {
	page, err := s.client.Fetch(url)
	if err != nil {
		return models.CourseRecord{}, fmt.Errorf("failed to fetch course page: %w", err)
	}

	record, err := ParseCoursePage(page, url, term)
	if err != nil {
		return models.CourseRecord{}, err
	}

	s.politeSleep()

	return record, nil
}

func (s *Scraper) politeSleep() {
	if s.sleep > 0 {
		time.Sleep(s.sleep)
	}
}
