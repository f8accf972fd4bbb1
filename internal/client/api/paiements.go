package api

import (
	"context"
	"io"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

func (c *RESTClient) CreatePayment(ctx context.Context, in models.PaymentInput) (*models.Payment, error) {
	var p models.Payment
	if err := c.do(ctx, http.MethodPost, "/paiements", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SimulateOrangeMoney runs the mock Orange Money flow; no real gateway is
// involved.
func (c *RESTClient) SimulateOrangeMoney(ctx context.Context, in models.PaymentInput) (*models.Payment, error) {
	var p models.Payment
	if err := c.do(ctx, http.MethodPost, "/paiements/simuler-orange-money", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SimulateWave runs the mock Wave flow; no real gateway is involved.
func (c *RESTClient) SimulateWave(ctx context.Context, in models.PaymentInput) (*models.Payment, error) {
	var p models.Payment
	if err := c.do(ctx, http.MethodPost, "/paiements/simuler-wave", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *RESTClient) UploadPaymentProof(ctx context.Context, paymentID, filename string, file io.Reader) (*models.Payment, error) {
	var p models.Payment
	if err := c.doMultipart(ctx, "/paiements/"+paymentID+"/preuve", "preuve", filename, file, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
