// Package apiclient implementa views.Backend contra el API HTTP del servicio de activos.
package apiclient

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
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var _ views.Backend = (*Client)(nil)

// Límites de lectura de respuestas: JSON y cuerpos binarios (reportes PDF).
const (
	maxBody    = 4 << 20
	maxRawBody = 64 << 20
)

// ErrBodyTooLarge la respuesta supera el límite de lectura; nunca se entrega truncada.
var ErrBodyTooLarge = errors.New("apiclient: respuesta demasiado grande")

// Client adaptador HTTP del servicio de datos. Cada request lleva el token Bearer
// del dueño; las respuestas de error se traducen a *domain.RemoteError.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests y transportes en proceso).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout fija el timeout de red de cada request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger registra cada request a nivel debug.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New construye el cliente para baseURL (sin barra final).
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Categorías ───────────────────────────────────────────────────────────────

func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var out []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Category, 0, len(out))
	for _, r := range out {
		list = append(list, r.Entity())
	}
	return list, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (entity.Category, error) {
	var out dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return entity.Category{}, err
	}
	return out.Entity(), nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) (entity.Category, error) {
	var out dto.CategoryResponse
	in := dto.CreateCategoryRequest{Name: name}
	if err := c.do(ctx, http.MethodPost, "/api/categories", in, http.StatusCreated, &out); err != nil {
		return entity.Category{}, err
	}
	return out.Entity(), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

// Report descarga el PDF de la tabla de activos de una categoría.
func (c *Client) Report(ctx context.Context, categoryID string) ([]byte, error) {
	var raw []byte
	err := c.do(ctx, http.MethodGet, "/api/categories/"+url.PathEscape(categoryID)+"/report", nil, http.StatusOK, &raw)
	return raw, err
}

// ── Campos ───────────────────────────────────────────────────────────────────

func (c *Client) AddFieldDefinition(ctx context.Context, categoryID, name string, kind entity.FieldKind) (entity.FieldDefinition, error) {
	var out dto.FieldDefinitionResponse
	in := dto.CreateFieldDefinitionRequest{Name: name, Kind: string(kind)}
	path := "/api/categories/" + url.PathEscape(categoryID) + "/fields"
	if err := c.do(ctx, http.MethodPost, path, in, http.StatusCreated, &out); err != nil {
		return entity.FieldDefinition{}, err
	}
	return out.Entity(), nil
}

func (c *Client) RemoveFieldDefinition(ctx context.Context, fieldID string) error {
	return c.do(ctx, http.MethodDelete, "/api/fields/"+url.PathEscape(fieldID), nil, http.StatusNoContent, nil)
}

// ── Activos ──────────────────────────────────────────────────────────────────

func (c *Client) ListAssets(ctx context.Context, categoryID string) ([]entity.Asset, error) {
	path := "/api/assets"
	if categoryID != "" {
		path += "?" + url.Values{"category_id": {categoryID}}.Encode()
	}
	var out []dto.AssetResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	list := make([]entity.Asset, 0, len(out))
	for _, r := range out {
		list = append(list, r.Entity())
	}
	return list, nil
}

func (c *Client) GetAsset(ctx context.Context, id string) (entity.Asset, error) {
	var out dto.AssetResponse
	if err := c.do(ctx, http.MethodGet, "/api/assets/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return entity.Asset{}, err
	}
	return out.Entity(), nil
}

func (c *Client) CreateAsset(ctx context.Context, categoryID, patrimonio string, values []entity.FieldValue) (entity.Asset, error) {
	in := dto.CreateAssetRequest{
		CategoryID:  categoryID,
		Patrimonio:  patrimonio,
		FieldValues: dto.FromFieldValues(values),
	}
	var out dto.AssetResponse
	if err := c.do(ctx, http.MethodPost, "/api/assets", in, http.StatusCreated, &out); err != nil {
		return entity.Asset{}, err
	}
	return out.Entity(), nil
}

// UpdateAsset reemplaza patrimonio y el conjunto completo de valores (PUT).
func (c *Client) UpdateAsset(ctx context.Context, id, patrimonio string, values []entity.FieldValue) (entity.Asset, error) {
	in := dto.UpdateAssetRequest{Patrimonio: patrimonio, FieldValues: dto.FromFieldValues(values)}
	var out dto.AssetResponse
	if err := c.do(ctx, http.MethodPut, "/api/assets/"+url.PathEscape(id), in, http.StatusOK, &out); err != nil {
		return entity.Asset{}, err
	}
	return out.Entity(), nil
}

// PatchAsset actualización parcial; solo viajan los campos no nulos de in.
func (c *Client) PatchAsset(ctx context.Context, id string, in dto.PatchAssetRequest) (entity.Asset, error) {
	var out dto.AssetResponse
	if err := c.do(ctx, http.MethodPatch, "/api/assets/"+url.PathEscape(id), in, http.StatusOK, &out); err != nil {
		return entity.Asset{}, err
	}
	return out.Entity(), nil
}

func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/assets/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

// ── Transporte ───────────────────────────────────────────────────────────────

// do ejecuta el request y decodifica out cuando el status es want.
// out de tipo *[]byte recibe el cuerpo sin decodificar.
func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: crear request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", domain.ErrCanceled, ctx.Err())
		}
		return &domain.RemoteError{Kind: domain.ErrTransport, Cause: err}
	}
	defer resp.Body.Close()

	limit := int64(maxBody)
	if _, ok := out.(*[]byte); ok {
		limit = maxRawBody
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", domain.ErrCanceled, ctx.Err())
		}
		return &domain.RemoteError{Status: resp.StatusCode, Kind: domain.ErrTransport, Cause: err}
	}
	if int64(len(raw)) > limit {
		return &domain.RemoteError{
			Status: resp.StatusCode,
			Kind:   domain.ErrTransport,
			Cause:  fmt.Errorf("%w: %s %s supera %d bytes", ErrBodyTooLarge, method, path, limit),
		}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode != want {
		return decodeError(resp.StatusCode, raw)
	}
	switch dst := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*dst = raw
		return nil
	default:
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("apiclient: decodificar respuesta %s %s: %w", method, path, err)
		}
		return nil
	}
}

// decodeError arma el RemoteError a partir del cuerpo dto.ErrorResponse.
// Un cuerpo que no es JSON deja Message vacío y el núcleo usa su texto genérico.
func decodeError(status int, raw []byte) error {
	e := &domain.RemoteError{Status: status, Kind: domain.KindForStatus(status)}
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		e.Cause = errors.New(http.StatusText(status))
		return e
	}
	e.Code = body.Code
	e.Message = body.Message
	e.Field = body.Field
	return e
}
