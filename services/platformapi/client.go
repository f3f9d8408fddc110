package platformapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
)

const (
	httpClientTimeout = 5 * time.Second
)

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  mylog.Logger
}

func NewClient(baseURL string) Client {
	return &httpClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: httpClientTimeout,
		},
		logger: mylog.New("platformapi"),
	}
}

func (pc *httpClient) CreateOrder(c context.Context, opts checkoutapi.CheckoutOptions) (OrderResult, error) {
	resp := OrderResult{}
	err := pc.send(c, http.MethodPost, "/api/orders/", opts, &resp)
	return resp, err
}

func (pc *httpClient) CaptureOrder(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (CaptureResult, error) {
	resp := CaptureResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/orders/%s/capture", url.PathEscape(orderID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) GetOrderStatus(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (StatusResult, error) {
	resp := StatusResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/orders/%s", url.PathEscape(orderID)), opts, &resp)
	return resp, err
}

type confirmOrderRequest struct {
	checkoutapi.CheckoutOptions
	PaymentMethodData string `json:"payment-method-data,omitempty"`
}

func (pc *httpClient) ConfirmOrder(c context.Context, orderID string, paymentMethodData string, opts checkoutapi.CheckoutOptions) (ConfirmResult, error) {
	resp := ConfirmResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/orders/%s/confirm", url.PathEscape(orderID)), confirmOrderRequest{
		CheckoutOptions:   opts,
		PaymentMethodData: paymentMethodData,
	}, &resp)
	return resp, err
}

func (pc *httpClient) InitiatePayerAction(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (ConfirmResult, error) {
	resp := ConfirmResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/orders/%s/payer-action", url.PathEscape(orderID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) CreateSetupToken(c context.Context, opts checkoutapi.CheckoutOptions) (SetupTokenResult, error) {
	resp := SetupTokenResult{}
	err := pc.send(c, http.MethodPost, "/api/vault/setup-tokens", opts, &resp)
	return resp, err
}

func (pc *httpClient) CreatePaymentToken(c context.Context, setupTokenID string, opts checkoutapi.CheckoutOptions) (PaymentTokenResult, error) {
	resp := PaymentTokenResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/vault/setup-tokens/%s", url.PathEscape(setupTokenID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) GetIDToken(c context.Context, customerID string, includeAuthAssertion bool, opts checkoutapi.CheckoutOptions) (IDTokenResult, error) {
	path := fmt.Sprintf("/api/identity/id-token/%s", url.PathEscape(customerID))
	if includeAuthAssertion {
		path += "?include-auth-assertion=true"
	}
	resp := IDTokenResult{}
	err := pc.send(c, http.MethodPost, path, opts, &resp)
	return resp, err
}

func (pc *httpClient) GetClientToken(c context.Context, opts checkoutapi.CheckoutOptions) (ClientTokenResult, error) {
	resp := ClientTokenResult{}
	err := pc.send(c, http.MethodPost, "/api/identity/client-token", opts, &resp)
	return resp, err
}

func (pc *httpClient) CreateReferral(c context.Context, opts checkoutapi.CheckoutOptions) (ReferralResult, error) {
	resp := ReferralResult{}
	err := pc.send(c, http.MethodPost, "/api/partner/referrals", opts, &resp)
	return resp, err
}

func (pc *httpClient) GetSellerStatus(c context.Context, merchantID string, opts checkoutapi.CheckoutOptions) (LookupResult, error) {
	resp := LookupResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/partner/sellers/%s", url.PathEscape(merchantID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) GetAuthorization(c context.Context, authID string, opts checkoutapi.CheckoutOptions) (LookupResult, error) {
	resp := LookupResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/authorizations/%s", url.PathEscape(authID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) GetCapture(c context.Context, captureID string, opts checkoutapi.CheckoutOptions) (LookupResult, error) {
	resp := LookupResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/captures/%s", url.PathEscape(captureID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) RefundCapture(c context.Context, captureID string, opts checkoutapi.CheckoutOptions) (LookupResult, error) {
	resp := LookupResult{}
	err := pc.send(c, http.MethodPost, fmt.Sprintf("/api/captures/%s/refund", url.PathEscape(captureID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) GetPaymentToken(c context.Context, paymentTokenID string, opts checkoutapi.CheckoutOptions) (LookupResult, error) {
	resp := LookupResult{}
	err := pc.send(c, http.MethodGet, fmt.Sprintf("/api/vault/payment-tokens/%s", url.PathEscape(paymentTokenID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) DeletePaymentToken(c context.Context, paymentTokenID string, opts checkoutapi.CheckoutOptions) (LookupResult, error) {
	resp := LookupResult{}
	err := pc.send(c, http.MethodDelete, fmt.Sprintf("/api/vault/payment-tokens/%s", url.PathEscape(paymentTokenID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) GetCustomerTokens(c context.Context, customerID string, opts checkoutapi.CheckoutOptions) (LookupResult, error) {
	resp := LookupResult{}
	err := pc.send(c, http.MethodGet, fmt.Sprintf("/api/vault/customers/%s", url.PathEscape(customerID)), opts, &resp)
	return resp, err
}

func (pc *httpClient) send(c context.Context, method string, path string, reqBody interface{}, respBody interface{}) error {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error marshalling request for %s %s: %s", method, path, err))
	}

	httpReq, err := http.NewRequestWithContext(c, method, pc.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error creating http request for %s %s: %s", method, path, err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := pc.client.Do(httpReq)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error calling %s %s: %s", method, path, err))
	}
	defer httpResp.Body.Close()

	pc.logger.Log(c, "", mylog.SeverityInfo, "HTTP call to platform: %s %s -> %d", method, path, httpResp.StatusCode)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return myerrors.NewInternalError(fmt.Errorf("error calling %s %s: status %d", method, path, httpResp.StatusCode))
	}

	err = json.NewDecoder(httpResp.Body).Decode(respBody)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error parsing response of %s %s: %s", method, path, err))
	}

	return nil
}
