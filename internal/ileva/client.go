package ileva

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"boletoconsulta/entity"
	"boletoconsulta/lib/sl"

	"github.com/google/uuid"
)

const defaultPageSize = 2

type Client struct {
	hc          *http.Client
	baseURL     string
	accessToken string
	pageSize    int
	log         *slog.Logger
}

type Config struct {
	BaseURL     string
	AccessToken string
	PageSize    int
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		hc:          &http.Client{Timeout: 10 * time.Second},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		pageSize:    pageSize,
		log:         logger.With(sl.Module("ileva")),
	}
}

// request sends a GET to the Ileva API with the access_token header and
// returns the raw response body. Non-2xx responses come back as
// *entity.ErroUpstream with the message extracted from the body.
func (c *Client) request(ctx context.Context, path string, query url.Values) ([]byte, error) {
	correlation := uuid.NewString()
	log := c.log.With(
		slog.String("path", path),
		slog.String("correlation_id", correlation),
	)

	status := "ERROR"
	t1 := time.Now()
	defer func() {
		log.Debug("ileva API request completed",
			slog.String("duration", fmt.Sprintf("%.3fms", float64(time.Since(t1))/float64(time.Millisecond))),
			slog.String("status", status))
	}()

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Error("create request", sl.Err(err))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.accessToken)
	req.Header.Set("X-Correlation-Id", correlation)

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error("request failed", sl.Err(err))
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	status = resp.Status
	if resp.StatusCode >= 300 {
		log.Error("ileva API returned error",
			slog.String("status", resp.Status),
			slog.String("body", string(body)))
		return nil, parseErro(resp.StatusCode, body)
	}

	return body, nil
}

// BuscarAssociado looks up the associate record for a tax id. A successful
// response without an associate returns entity.ErrAssociadoNaoEncontrado.
func (c *Client) BuscarAssociado(ctx context.Context, cpfCnpj string) (*entity.Associado, error) {
	q := url.Values{}
	q.Set("cpf_cnpj", cpfCnpj)

	body, err := c.request(ctx, "/associado/buscar", q)
	if err != nil {
		return nil, err
	}

	var res struct {
		Associado *entity.Associado `json:"associado"`
	}
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode associado: %w", err)
	}
	if res.Associado == nil {
		return nil, entity.ErrAssociadoNaoEncontrado
	}
	return res.Associado, nil
}

// BoletosEmAberto fetches the first page of open invoices for the tax id.
// The raw body is returned so /api/boletos can forward it verbatim.
func (c *Client) BoletosEmAberto(ctx context.Context, cpfAssociado string) ([]byte, error) {
	q := url.Values{}
	q.Set("inicio_paginacao", "0")
	q.Set("quantidade_por_pagina", strconv.Itoa(c.pageSize))
	q.Set("cpf_associado", cpfAssociado)
	q.Set("situacao_boleto", entity.SituacaoAberto)

	return c.request(ctx, "/boleto/lista-associado-veiculo", q)
}
