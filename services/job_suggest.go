package services

import (
	"context"
	"sort"
	"strings"

	"crm/constants"
	"crm/dto"
	apperrors "crm/errors"
	"crm/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	maxSuggestions     = 5
	minSuggestionScore = 0.5
)

// Suggest ranks active job titles against a possibly misspelled query.
// Accents and case are ignored.
func (s *JobService) Suggest(ctx context.Context, query string) ([]dto.JobSuggestion, error) {
	q := normalizeInput(query)
	if q == "" {
		return nil, apperrors.Validation("q is required")
	}

	var jobs []models.Job
	if err := s.db.WithContext(ctx).
		Select("id", "title").
		Where("status = ?", constants.JobStatusActive).
		Find(&jobs).Error; err != nil {
		return nil, apperrors.Server("Could not load jobs", err)
	}
	if len(jobs) == 0 {
		return []dto.JobSuggestion{}, nil
	}

	titles := make([]string, 0, len(jobs))
	seen := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		t := normalizeInput(j.Title)
		if t != "" && !seen[t] {
			seen[t] = true
			titles = append(titles, t)
		}
	}

	nearest := make(map[string]bool)
	for _, t := range createMatcher(titles).ClosestN(q, maxSuggestions) {
		nearest[t] = true
	}

	var out []dto.JobSuggestion
	for _, j := range jobs {
		t := normalizeInput(j.Title)
		score := calculateSimilarity(q, t)
		if strings.Contains(t, q) {
			score = 1
		}
		if score < minSuggestionScore && !nearest[t] {
			continue
		}
		out = append(out, dto.JobSuggestion{ID: j.ID, Title: j.Title, Score: score})
	}

	sort.SliceStable(out, func(i, k int) bool {
		if out[i].Score != out[k].Score {
			return out[i].Score > out[k].Score
		}
		return out[i].ID > out[k].ID
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out, nil
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity is 1 for equal strings and falls towards 0 as the
// edit distance grows.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	sim := 1 - float64(distance)/maxLen
	if sim < 0 {
		return 0
	}
	return sim
}
