// Package cep looks up Brazilian postal codes against the ViaCEP API to
// pre-fill address forms. Lookups are best-effort: every failure mode is
// non-fatal and the form stays editable by hand.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"bewear/internal/br"
	"bewear/internal/domain"
	"bewear/internal/telemetry"
)

// Result is the autofill payload for a known postal code.
type Result struct {
	Street       string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Lookuper resolves a postal code to address fields.
type Lookuper interface {
	Lookup(ctx context.Context, code string) (*Result, error)
}

// Config holds ViaCEP client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls ViaCEP behind a circuit breaker so a flapping upstream
// fails fast instead of holding request handlers on timeouts.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*Result]
	logger  *slog.Logger
}

// New creates a ViaCEP client.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://viacep.com.br"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	settings := gobreaker.Settings{
		Name:     "viacep",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[*Result](settings),
		logger:  logger,
	}
}

// viaCEPResponse mirrors the upstream payload. Unknown codes come back
// as 200 with {"erro": true}.
type viaCEPResponse struct {
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         bool   `json:"erro"`
}

// Lookup resolves a postal code (masked or bare digits) to address
// fields. A malformed code is EINVALID and a code the registry does not
// know is ENOTFOUND; only transport failures are EUNAVAILABLE.
func (c *Client) Lookup(ctx context.Context, code string) (*Result, error) {
	digits := br.OnlyDigits(code)
	if len(digits) != 8 {
		telemetry.CEPLookups.WithLabelValues("invalid").Inc()
		return nil, domain.Invalid("cep.lookup", "CEP inválido (ex: 01311-000)")
	}

	result, err := c.breaker.Execute(func() (*Result, error) {
		return c.fetch(ctx, digits)
	})
	if err != nil {
		telemetry.CEPLookups.WithLabelValues("unavailable").Inc()
		return nil, domain.Unavailable(err, "cep.lookup", "Não foi possível consultar o CEP")
	}
	// A nil result is the upstream's "unknown cep" answer. It went through
	// Execute as a success: unknown codes are healthy responses and must
	// not trip the breaker.
	if result == nil {
		telemetry.CEPLookups.WithLabelValues("not_found").Inc()
		return nil, domain.ErrCEPNotFound
	}
	telemetry.CEPLookups.WithLabelValues("ok").Inc()
	return result, nil
}

func (c *Client) fetch(ctx context.Context, digits string) (*Result, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("read viacep response: %w", err)
	}

	var payload viaCEPResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode viacep response: %w", err)
	}
	if payload.Erro {
		// 200 with {"erro": true}: the code does not exist.
		return nil, nil
	}

	return &Result{
		Street:       payload.Street,
		Neighborhood: payload.Neighborhood,
		City:         payload.City,
		State:        payload.State,
	}, nil
}
