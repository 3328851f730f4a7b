// Package headhunter is a small client for the public HeadHunter (hh.ru) API.
// Only the vacancy endpoint is used: its description is a job posting
// that can be analyzed against a resume.
package headhunter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL      = "https://api.hh.ru"
	VacancyPath = "/vacancies"
	userAgent   = "spigell/cv-analyzer (spigelly@gmail.com)"
)

var (
	ErrInvalidVacancyID = errors.New("invalid vacancy id")

	vacancyIDRe  = regexp.MustCompile(`^[0-9]+$`)
	vacancyURLRe = regexp.MustCompile(`^https?://(?:[a-z0-9-]+\.)*hh\.(?:ru|kz|uz)/vacancy/([0-9]+)`)
)

type Client struct {
	// ctx used only for http requests right now
	ctx    context.Context
	token  string
	logger *zap.Logger

	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

// New creates a client. The token is optional: vacancies are public.
func New(ctx context.Context, logger *zap.Logger, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// GetVacancy fetches a single vacancy with its full description.
func (c *Client) GetVacancy(id string) (*Vacancy, error) {
	if !vacancyIDRe.MatchString(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVacancyID, id)
	}

	var raw map[string]interface{}
	if err := c.getJSON(fmt.Sprintf("%s%s/%s", c.APIURL, VacancyPath, id), nil, &raw); err != nil {
		return nil, fmt.Errorf("get vacancy %s: %w", id, err)
	}

	vacancy, err := decodeVacancy(raw)
	if err != nil {
		return nil, fmt.Errorf("decode vacancy %s: %w", id, err)
	}

	c.logger.Debug("got vacancy from HH.ru",
		zap.String("vacancy_id", vacancy.ID),
		zap.String("name", vacancy.Name),
		zap.Int("key_skills", len(vacancy.KeySkills)),
	)

	return vacancy, nil
}

// VacancyIDFromURL returns the vacancy id of a hh.ru vacancy page URL.
func VacancyIDFromURL(u string) (string, bool) {
	m := vacancyURLRe.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}
