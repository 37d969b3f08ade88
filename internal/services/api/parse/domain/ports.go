package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Parse(ctx context.Context, in ParseInput) (ParseResult, error)
	ParseBatch(ctx context.Context, in BatchInput) (BatchResult, error)
	Matchers(ctx context.Context) (MatchersResult, error)
}

// CounterPort reports how many recognizers the serving registry holds
type CounterPort interface {
	MatcherCount() int
}
