package usecase

import (
	"context"
	"net/url"
)

// APICaller defines the contract for executing a single call against the
// upstream LinearB API. Implementations handle auth headers, encoding and
// error mapping; use cases handle parameter validation and shaping.
type APICaller interface {
	Do(ctx context.Context, method, endpoint string, query url.Values, body interface{}) (interface{}, error)
}
