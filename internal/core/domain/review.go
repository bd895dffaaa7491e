package domain

type Review struct {
	ID           int
	ProductName  string
	CustomerName string
	Content      string
	// Rating holds the decoded JSON value as is: a number, a numeric
	// string, nil or garbage. Rendering decides what it means.
	Rating any
	Date   string
}
