package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPRegistry is the production Registry implementation: an HTTP/JSON
// client against the RTU/RENAP endpoints, rate-limited and
// context-aware.
//
// Grounded on the pluggable-client, lazy-init-under-mutex shape of
// go-suretax's SuretaxClient.getClient/Send, generalized from raw
// net/http to resty's request builder, and on pvdata's go.mod pairing of
// go-resty with golang.org/x/time/rate for outbound throttling.
type HTTPRegistry struct {
	BaseURL string
	Timeout time.Duration

	mu      sync.Mutex
	client  *resty.Client
	limiter *rate.Limiter
}

// NewHTTPRegistry builds an HTTPRegistry against baseURL, enforcing
// timeout per request and limiting outbound calls to ratePerSecond.
func NewHTTPRegistry(baseURL string, timeout time.Duration, ratePerSecond float64) *HTTPRegistry {
	return &HTTPRegistry{
		BaseURL: baseURL,
		Timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

func (r *HTTPRegistry) getClient() *resty.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.client == nil {
		r.client = resty.New().
			SetBaseURL(r.BaseURL).
			SetTimeout(r.Timeout)
	}
	return r.client
}

func (r *HTTPRegistry) wait(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

type taxpayerResponse struct {
	Exists         bool   `json:"exists"`
	Status         string `json:"status"`
	IVAAffiliation string `json:"iva_affiliation"`
	ISRAffiliation string `json:"isr_affiliation"`
}

// NitExists reports whether nit is registered in the RTU.
func (r *HTTPRegistry) NitExists(ctx context.Context, nit string) (bool, error) {
	tp, err := r.GetTaxpayer(ctx, nit)
	if err != nil {
		return false, err
	}
	return tp != nil, nil
}

// GetTaxpayer fetches the RTU record for nit. A nil, nil return means the
// registry answered negatively (nit not found) — distinct from a non-nil
// error, which means the call itself failed.
func (r *HTTPRegistry) GetTaxpayer(ctx context.Context, nit string) (*Taxpayer, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	var out taxpayerResponse
	resp, err := r.getClient().R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("nit", nit).
		Get("/rtu/{nit}")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode() == 404 {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: rtu returned %s", ErrUnavailable, resp.Status())
	}
	if !out.Exists {
		return nil, nil
	}
	return &Taxpayer{
		Status:         TaxpayerStatus(out.Status),
		IVAAffiliation: out.IVAAffiliation,
		ISRAffiliation: out.ISRAffiliation,
	}, nil
}

type establishmentResponse struct {
	Active bool `json:"active"`
}

// EstablishmentActive reports whether nit's establishment code was active
// on atDate.
func (r *HTTPRegistry) EstablishmentActive(ctx context.Context, nit, code string, atDate string) (bool, error) {
	if err := r.wait(ctx); err != nil {
		return false, err
	}
	var out establishmentResponse
	resp, err := r.getClient().R().
		SetContext(ctx).
		SetResult(&out).
		SetQueryParams(map[string]string{"nit": nit, "code": code, "at": atDate}).
		Get("/establecimiento")
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("%w: establecimiento returned %s", ErrUnavailable, resp.Status())
	}
	return out.Active, nil
}

type cuiResponse struct {
	Valid  bool   `json:"valid"`
	Status string `json:"status"`
	Name   string `json:"name"`
}

// ValidateCUI consults RENAP for cui.
func (r *HTTPRegistry) ValidateCUI(ctx context.Context, cui string) (*Person, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	var out cuiResponse
	resp, err := r.getClient().R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("cui", cui).
		Get("/renap/{cui}")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: renap returned %s", ErrUnavailable, resp.Status())
	}
	return &Person{Valid: out.Valid, Status: PersonStatus(out.Status), Name: out.Name}, nil
}
