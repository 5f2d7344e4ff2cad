package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
)

// getRazorpayConfig reads the gateway credentials; the secret doubles as
// the HMAC key for callback signature verification.
func getRazorpayConfig() (keyID, keySecret, apiURL string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	apiURL = os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1"
	}
	if keyID == "" || keySecret == "" {
		return "", "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, apiURL, nil
}

// GatewayOrder is the gateway's reserved transaction.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type gatewayErrorResponse struct {
	Error *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateGatewayOrder reserves a transaction at the gateway for the given
// decimal-currency amount and returns the gateway order. No local state
// changes; every call mints a new gateway order.
func CreateGatewayOrder(amount float64, currency, receipt string) (*GatewayOrder, error) {
	keyID, keySecret, apiURL, err := getRazorpayConfig()
	if err != nil {
		return nil, err
	}

	amountInPaise := int64(math.Round(amount * 100))

	payload := map[string]interface{}{
		"amount":   amountInPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", apiURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var gatewayErr gatewayErrorResponse
		if json.Unmarshal(body, &gatewayErr) == nil && gatewayErr.Error != nil {
			return nil, fmt.Errorf("gateway error: %s", gatewayErr.Error.Description)
		}
		return nil, fmt.Errorf("gateway API error (%d)", resp.StatusCode)
	}

	var order GatewayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %v", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway returned empty order id")
	}
	return &order, nil
}

// VerifySignature recomputes HMAC-SHA256 over "orderRef|paymentRef" and
// compares it to the gateway-supplied signature. This is the sole trust
// boundary for payment callbacks; any mismatch fails closed.
func VerifySignature(gatewayOrderRef, gatewayPaymentRef, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderRef + "|" + gatewayPaymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
