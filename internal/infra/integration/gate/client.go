// Package gate fala com o serviço remoto que controla identidade, aprovação
// de contas e paywall. O núcleo de lembretes não depende dele; só o
// middleware de acesso e o fluxo de comprovantes consomem este client.
package gate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xavierca1/lembrete-consorcio/internal/usecase"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetProfile devolve nil sem erro quando o principal ainda não tem perfil.
func (c *Client) GetProfile(ctx context.Context, principal string) (*UserProfile, error) {
	var profile UserProfile
	found, err := c.get(ctx, "/users/"+url.PathEscape(principal)+"/profile", &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) SaveProfile(ctx context.Context, profile UserProfile) error {
	return c.post(ctx, "/users/"+url.PathEscape(profile.Principal)+"/profile", profile, nil)
}

// AccessState resolve aprovação e paywall numa chamada só; é o que o
// middleware consulta por requisição.
func (c *Client) AccessState(ctx context.Context, principal string) (approved, paywallActive bool, err error) {
	var resp accessStateResponse
	if _, err = c.get(ctx, "/users/"+url.PathEscape(principal)+"/access", &resp); err != nil {
		return false, false, err
	}
	return resp.Approved, resp.PaywallActive, nil
}

func (c *Client) IsPaywallActive(ctx context.Context) (bool, error) {
	var resp accessStateResponse
	if _, err := c.get(ctx, "/paywall", &resp); err != nil {
		return false, err
	}
	return resp.PaywallActive, nil
}

func (c *Client) RequestApproval(ctx context.Context, principal string) error {
	return c.post(ctx, "/users/"+url.PathEscape(principal)+"/approval/request", nil, nil)
}

func (c *Client) SetApproval(ctx context.Context, principal string, status ApprovalStatus) error {
	body := map[string]ApprovalStatus{"status": status}
	return c.post(ctx, "/users/"+url.PathEscape(principal)+"/approval", body, nil)
}

func (c *Client) ListApprovals(ctx context.Context) ([]UserApprovalInfo, error) {
	var out []UserApprovalInfo
	if _, err := c.get(ctx, "/approvals", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitPaymentProof(ctx context.Context, principal string, proof PaymentProofUpdate) (int64, error) {
	var resp submitProofResponse
	err := c.post(ctx, "/users/"+url.PathEscape(principal)+"/payment-proofs", proof, &resp)
	return resp.ID, err
}

func (c *Client) ListPaymentProofs(ctx context.Context, principal string) ([]PaymentProof, error) {
	var out []PaymentProof
	if _, err := c.get(ctx, "/users/"+url.PathEscape(principal)+"/payment-proofs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateProofStatus(ctx context.Context, proofID int64, status PaymentProofStatus) error {
	body := map[string]PaymentProofStatus{"status": status}
	return c.post(ctx, fmt.Sprintf("/payment-proofs/%d/status", proofID), body, nil)
}

func (c *Client) HealthCheck(ctx context.Context) bool {
	_, err := c.get(ctx, "/health", &struct{}{})
	return err == nil
}

// get devolve found=false em 404, sem erro.
func (c *Client) get(ctx context.Context, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &usecase.TechnicalError{
			Code:    "GATE_UNREACHABLE",
			Message: fmt.Sprintf("erro request gate: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return false, statusError(resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, &usecase.TechnicalError{
			Code:    "GATE_BAD_RESPONSE",
			Message: fmt.Sprintf("erro decode gate: %v", err),
		}
	}
	return true, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao marshal payload: %w", err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, reader)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &usecase.TechnicalError{
			Code:    "GATE_UNREACHABLE",
			Message: fmt.Sprintf("erro request gate: %v", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return statusError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &usecase.TechnicalError{
				Code:    "GATE_BAD_RESPONSE",
				Message: fmt.Sprintf("erro decode gate: %v", err),
			}
		}
	}
	return nil
}

// statusError classifica a resposta do gate: 4xx é rejeição (erro de
// domínio, o chamador pode mostrar a mensagem), o resto é falha técnica.
func statusError(status int, body []byte) error {
	msg := fmt.Sprintf("gate status %d: %s", status, string(body))
	if status >= 400 && status < 500 {
		return &usecase.DomainError{Code: "GATE_REJECTED", Message: msg}
	}
	return &usecase.TechnicalError{Code: "GATE_FAILED", Message: msg}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
}
