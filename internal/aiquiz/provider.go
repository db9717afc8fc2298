package aiquiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
)

// maxErrorBody caps how much of a failed response ends up in the error.
const maxErrorBody = 512

type Provider interface {
	Generate(ctx context.Context, payload RequestPayload) (QuizSet, error)
	Name() string
}

// NewProvider picks the transport named in the settings. The SDK client
// is created once, on first use, so that a missing key does not fail
// startup.
func NewProvider(s config.GeminiSettings, client *http.Client) Provider {
	if client == nil {
		client = &http.Client{Timeout: s.Timeout}
	}
	if s.Transport == config.TransportSDK {
		return &sdkProvider{apiKey: s.APIKey, model: s.Model, httpClient: client}
	}
	return &restProvider{apiKey: s.APIKey, endpoint: s.Endpoint, client: client}
}

type restProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func (p *restProvider) Name() string { return string(config.TransportREST) }

func (p *restProvider) Generate(ctx context.Context, payload RequestPayload) (QuizSet, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request payload: %w", err)
	}

	endpoint, err := p.requestURL()
	if err != nil {
		return nil, newError(KindTransport, "invalid gemini endpoint", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newError(KindTransport, "could not create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] request to gemini failed")
		return nil, newError(KindTransport, "request to gemini failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransport, "could not read gemini response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := strings.TrimSpace(string(raw))
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		log.WithField("status", resp.StatusCode).Errorf("[AIQUIZ] gemini returned an error: %s", excerpt)
		return nil, newError(KindTransport, fmt.Sprintf("gemini returned status %d", resp.StatusCode), errors.New(excerpt))
	}

	log.Debugf("[AIQUIZ] raw gemini response:\n%s", raw)
	return Parse(raw)
}

func (p *restProvider) requestURL() (string, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("key", p.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type sdkProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client

	once      sync.Once
	client    *genai.Client
	clientErr error
}

func (p *sdkProvider) Name() string { return string(config.TransportSDK) }

func (p *sdkProvider) genaiClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		p.client, p.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     p.apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: p.httpClient,
		})
	})
	return p.client, p.clientErr
}

func (p *sdkProvider) Generate(ctx context.Context, payload RequestPayload) (QuizSet, error) {
	log := config.WithContext(ctx)

	client, err := p.genaiClient(ctx)
	if err != nil {
		return nil, newError(KindTransport, "could not create gemini client", err)
	}

	result, err := client.Models.GenerateContent(ctx, p.model, payload.Contents, &genai.GenerateContentConfig{
		ResponseMIMEType: payload.GenerationConfig.ResponseMIMEType,
		ResponseSchema:   payload.GenerationConfig.ResponseSchema,
	})
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] gemini generateContent failed")
		return nil, newError(KindTransport, "gemini generateContent failed", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return nil, newError(KindMalformedEnvelope, "response has no candidate text", nil)
	}
	if !hasTextPart(result.Candidates[0].Content.Parts) {
		return nil, newError(KindMalformedEnvelope, "content has no text part", nil)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] raw gemini text:\n%s", raw)
	return ParseText(raw)
}

func hasTextPart(parts []*genai.Part) bool {
	for _, part := range parts {
		if part != nil && !part.Thought && part.Text != "" {
			return true
		}
	}
	return false
}
