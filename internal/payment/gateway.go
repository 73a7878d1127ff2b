package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ordernest-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnauthorized = errors.New("Unauthorized to process payment")
	ErrUnavailable  = errors.New("Unable to process payment right now")
)

// Gateway initiates payment for an order. The call is fire-and-forget: a nil
// error means the payment service accepted the request, not that the payment
// completed.
type Gateway interface {
	InitiatePayment(ctx context.Context, orderID uuid.UUID, authorization string) error
}

type httpGateway struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPGateway(baseURL string) Gateway {
	if baseURL == "" {
		logger.L().Warn("payment base URL is empty")
	}

	return &httpGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *httpGateway) InitiatePayment(ctx context.Context, orderID uuid.UUID, authorization string) error {
	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID.String()))

	body, err := json.Marshal(map[string]string{
		"orderId": orderID.String(),
	})
	if err != nil {
		return ErrUnavailable
	}

	url := fmt.Sprintf("%s/api/payments/process", g.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed building payment request", zap.Error(err))
		return ErrUnavailable
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	log.Info("sending payment request")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("payment request failed", zap.Error(err))
		return ErrUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		log.Info("payment request accepted")
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		log.Warn("payment request unauthorized", zap.Int("status", resp.StatusCode))
		return ErrUnauthorized
	default:
		log.Warn("payment request rejected", zap.Int("status", resp.StatusCode))
		return ErrUnavailable
	}
}
