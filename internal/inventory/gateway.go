package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ordernest-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("Product not found in inventory")
	ErrUnauthorized    = errors.New("Unauthorized to verify product in inventory")
	ErrUnavailable     = errors.New("Unable to verify inventory right now")
	ErrStockConflict   = errors.New("Inventory changed concurrently, please retry")
)

// Product is the inventory service's view of a catalog item.
type Product struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Price             *float64  `json:"price"`
	AvailableQuantity *int      `json:"availableQuantity"`
	Currency          string    `json:"currency"`
}

// Gateway is the inventory service client consumed by the order orchestrator.
type Gateway interface {
	GetProduct(ctx context.Context, productID uuid.UUID, authorization string) (*Product, error)

	// ReserveStock conditionally decrements available stock: the inventory
	// service applies the update only while `expected` still matches the
	// current quantity, and answers 409 otherwise. Two concurrent reserves of
	// the same product can therefore never oversell.
	ReserveStock(ctx context.Context, productID uuid.UUID, expected, updated int, authorization string) error
}

type httpGateway struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPGateway(baseURL string) Gateway {
	if baseURL == "" {
		logger.L().Warn("inventory base URL is empty")
	}

	return &httpGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *httpGateway) GetProduct(ctx context.Context, productID uuid.UUID, authorization string) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", productID.String()))

	url := fmt.Sprintf("%s/api/products/%s", g.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed building inventory request", zap.Error(err))
		return nil, ErrUnavailable
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("inventory request failed", zap.Error(err))
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read inventory response", zap.Error(err))
		return nil, ErrUnavailable
	}

	if err := classifyStatus(resp.StatusCode); err != nil {
		log.Warn("inventory returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, err
	}

	var product Product
	if err := json.Unmarshal(bodyBytes, &product); err != nil {
		log.Error("failed decoding inventory response", zap.Error(err))
		return nil, ErrUnavailable
	}

	if product.ID == uuid.Nil {
		log.Warn("inventory response carries no product id")
		return nil, ErrUnavailable
	}

	return &product, nil
}

func (g *httpGateway) ReserveStock(ctx context.Context, productID uuid.UUID, expected, updated int, authorization string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("product_id", productID.String()),
		zap.Int("expected_quantity", expected),
		zap.Int("updated_quantity", updated),
	)

	body, err := json.Marshal(map[string]int{
		"expectedQuantity": expected,
		"quantity":         updated,
	})
	if err != nil {
		return ErrUnavailable
	}

	url := fmt.Sprintf("%s/api/products/%s/stock", g.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed building stock reservation request", zap.Error(err))
		return ErrUnavailable
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("stock reservation request failed", zap.Error(err))
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		log.Warn("stock reservation rejected", zap.Int("status", resp.StatusCode))
		return err
	}

	log.Info("stock reserved")
	return nil
}

func classifyStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return ErrProductNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusConflict:
		return ErrStockConflict
	default:
		return ErrUnavailable
	}
}
