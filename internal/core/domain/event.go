package domain

import "time"

type ClientEventKind string

const (
	EventPageView         ClientEventKind = "page_view"
	EventCategorySelected ClientEventKind = "category_selected"
	EventSearch           ClientEventKind = "search"
	EventLogin            ClientEventKind = "login"
	EventSignup           ClientEventKind = "signup"
	EventLogout           ClientEventKind = "logout"
)

type ClientEvent struct {
	ID         string
	Kind       ClientEventKind
	Path       string
	Category   string
	Query      string
	Role       string
	OccurredAt time.Time
}

type SearchResult struct {
	ProductID    int
	Name         string
	Description  string
	CategoryName string
	Score        float64
}
