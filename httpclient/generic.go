//nolint:ireturn
package httpclient

import (
	"context"
	"fmt"
)

// DecodeJSON turns a result into T. Non-2xx results become *ServiceError and
// bodies that are not JSON become ErrDecodeResponse.
func DecodeJSON[T any](result *Result) (T, error) {
	var value T

	if err := result.Err(); err != nil {
		return value, err
	}

	if len(result.Raw) == 0 {
		return value, nil
	}

	if !result.IsJSON() {
		return value, fmt.Errorf("%w: unexpected body %q", ErrDecodeResponse, truncate(result.String()))
	}

	err := result.Decode(&value)

	return value, err
}

func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	return decodeFrom[T](c.Get(ctx, path, opts...))
}

func PostJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return decodeFrom[T](c.Post(ctx, path, body, opts...))
}

func PutJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return decodeFrom[T](c.Put(ctx, path, body, opts...))
}

func DeleteJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	return decodeFrom[T](c.Delete(ctx, path, opts...))
}

func decodeFrom[T any](result *Result, err error) (T, error) {
	if err != nil {
		var zero T

		return zero, err
	}

	return DecodeJSON[T](result)
}

const maxQuotedBody = 128

func truncate(s string) string {
	if len(s) <= maxQuotedBody {
		return s
	}

	return s[:maxQuotedBody] + "..."
}
