package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(receiptURL(g.BaseURL, orderID), qrcode.Medium, 256)
}

func receiptURL(baseURL string, orderID int) string {
	return fmt.Sprintf("%s/orders/%d", baseURL, orderID)
}

// ReceiptService renders the QR receipt for a checkout transaction.
type ReceiptService struct {
	orders OrderStore
	qr     QRGenerator
}

func NewReceiptService(orders OrderStore, qr QRGenerator) *ReceiptService {
	return &ReceiptService{orders: orders, qr: qr}
}

func (s *ReceiptService) QRCode(orderID int) ([]byte, error) {
	orders, err := s.orders.LoadOrders()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return s.qr.Generate(orderID)
		}
	}
	return nil, ErrOrderNotFound
}

func (s *ReceiptService) Link(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
