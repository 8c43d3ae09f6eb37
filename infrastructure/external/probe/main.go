package probe

import (
	"context"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
)

const defaultTimeout = 3 * time.Second

// HTTPProber treats any HTTP response, whatever its status, as reachable.
type HTTPProber struct {
	httpClient *resty.Client
}

func NewHTTPProber() *HTTPProber {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetRedirectPolicy(resty.NoRedirectPolicy())

	return &HTTPProber{httpClient: client}
}

func (p *HTTPProber) Probe(ctx context.Context, host, port string) error {
	url := "http://" + net.JoinHostPort(host, port) + "/"

	resp, err := p.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if resp != nil && resp.StatusCode() > 0 {
			return nil
		}
		return eris.Wrapf(err, "%s is not reachable", url)
	}
	return nil
}
