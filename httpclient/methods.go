// httpclient/methods.go
package httpclient

import (
	"context"
	"net/http"

	"github.com/deploymenttheory/go-api-magento-client/apiintegrations/magento"
)

// PendingResponse is the eventual outcome of a request started by Get, Post, Put or Delete.
type PendingResponse struct {
	done chan struct{}
	resp *http.Response
	err  error
}

// Done is closed once the response or error is available.
func (p *PendingResponse) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the request completes or ctx is done. Cancelling ctx only stops the wait;
// the request itself follows the context given when it was started.
func (p *PendingResponse) Await(ctx context.Context) (*http.Response, error) {
	select {
	case <-p.done:
		return p.resp, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) start(ctx context.Context, method, endpoint string, params magento.SearchCriteria, body any) *PendingResponse {
	p := &PendingResponse{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.resp, p.err = c.DoRequest(ctx, method, endpoint, params, body)
	}()
	return p
}

// Get starts a GET for endpoint. params are translated into the store's search criteria dialect;
// nil means no criteria, which for orders and products on current stores sends searchCriteria=all.
func (c *Client) Get(ctx context.Context, endpoint string, params magento.SearchCriteria) *PendingResponse {
	return c.start(ctx, http.MethodGet, endpoint, params, nil)
}

// Post starts a POST of body, encoded as JSON, to endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, body any) *PendingResponse {
	return c.start(ctx, http.MethodPost, endpoint, nil, body)
}

// Put starts a PUT of body, encoded as JSON, to endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, body any) *PendingResponse {
	return c.start(ctx, http.MethodPut, endpoint, nil, body)
}

// Delete starts a DELETE for endpoint. body is optional.
func (c *Client) Delete(ctx context.Context, endpoint string, body any) *PendingResponse {
	return c.start(ctx, http.MethodDelete, endpoint, nil, body)
}
