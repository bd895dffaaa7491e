package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/auracraft/storefront/internal/core/domain"
)

const (
	CollapsedReviews = 3
	MaxStars         = 5
	star             = "★"
)

// A ReviewPanel shows the first few reviews until it is expanded.
type ReviewPanel struct {
	reviews  []domain.Review
	expanded bool
}

func NewReviewPanel(rs []domain.Review, expanded bool) *ReviewPanel {
	return &ReviewPanel{reviews: rs, expanded: expanded}
}

func (p *ReviewPanel) Toggle() {
	p.expanded = !p.expanded
}

func (p *ReviewPanel) Expanded() bool {
	return p.expanded
}

func (p *ReviewPanel) Total() int {
	return len(p.reviews)
}

// HasToggle reports whether the expand/collapse control is shown.
func (p *ReviewPanel) HasToggle() bool {
	return len(p.reviews) > CollapsedReviews
}

func (p *ReviewPanel) Visible() []domain.Review {
	if p.expanded || len(p.reviews) <= CollapsedReviews {
		return p.reviews
	}
	return p.reviews[:CollapsedReviews]
}

// Stars is the number of stars a rating renders as. Missing, zero and
// unparsable ratings fall back to MaxStars.
func Stars(rating any) int {
	var f float64
	switch v := rating.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return MaxStars
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return MaxStars
		}
		f = n
	default:
		return MaxStars
	}

	if math.IsNaN(f) {
		return MaxStars
	}
	n := int(f)
	if n <= 0 || n > MaxStars {
		return MaxStars
	}
	return n
}

func StarString(rating any) string {
	return strings.Repeat(star, Stars(rating))
}

var reviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatReviewDate renders a raw review date as dd/mm/yyyy. Absent dates
// render empty, unknown layouts are shown as they came.
func FormatReviewDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}
