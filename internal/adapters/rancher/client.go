package rancher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"redeploy/internal/core/domain"
	"redeploy/internal/ports"

	"go.uber.org/zap"
	"resty.dev/v3"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	projectsPath    = "/projects"
)

var _ ports.RancherClientFactory = (*ClientFactory)(nil)
var _ ports.RancherClient = (*Client)(nil)

// ClientFactory creates one REST client per credential.
type ClientFactory struct {
	logger *zap.Logger
}

func ProvideClientFactory(logger *zap.Logger) *ClientFactory {
	return &ClientFactory{logger: logger}
}

func (f *ClientFactory) NewClient(credential domain.Credential) (ports.RancherClient, error) {
	if credential.Endpoint == "" {
		return nil, fmt.Errorf("credential '%s' has no endpoint", credential.ID)
	}

	httpClient := resty.New().
		SetLogger(f.logger.Sugar()).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+credential.BearerToken)
	if credential.TrustCert {
		// trustCert disables certificate verification for this endpoint only.
		httpClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &Client{
		http:     httpClient,
		endpoint: credential.BaseURL(),
		logger:   f.logger.With(zap.String("credential", credential.ID)),
	}, nil
}

// Client calls the Rancher2 v3 API of one endpoint.
type Client struct {
	http     *resty.Client
	endpoint string
	logger   *zap.Logger
}

func (c *Client) GetWorkload(ctx context.Context, path string) (*domain.WorkloadDocument, error) {
	url := c.endpoint + path
	body, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var document domain.WorkloadDocument
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("failed to parse workload from %s: %w", url, err)
	}
	return &document, nil
}

func (c *Client) UpdateWorkload(ctx context.Context, path string, document *domain.WorkloadDocument) error {
	payload, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to encode workload: %w", err)
	}
	_, err = c.do(ctx, http.MethodPut, c.endpoint+path, payload)
	return err
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.endpoint+projectsPath, nil)
	return err
}

func (c *Client) Close() error {
	return c.http.Close()
}

// do sends one request and returns the body of a 200 answer. Anything else is a
// *domain.UpstreamError carrying the status and body verbatim.
func (c *Client) do(ctx context.Context, method string, url string, payload []byte) ([]byte, error) {
	request := c.http.R().SetContext(ctx)
	if payload != nil {
		request.SetHeader("Content-Type", contentTypeJSON).SetBody(payload)
	}

	c.logger.Debug("Sending request to rancher", zap.String("method", method), zap.String("url", url))
	response, err := request.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, url, err)
	}

	body := response.String()
	c.logger.Debug("Received response from rancher",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("statusCode", response.StatusCode()),
	)
	if response.StatusCode() != http.StatusOK {
		return nil, &domain.UpstreamError{
			Method:     method,
			URL:        url,
			StatusCode: response.StatusCode(),
			Body:       body,
		}
	}
	return []byte(body), nil
}
