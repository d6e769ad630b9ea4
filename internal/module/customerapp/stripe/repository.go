package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/sirupsen/logrus"
)

type StripeRepository interface {
	FindCustomerByEmail(ctx context.Context, email string) (Customer, bool, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	CreatePrice(ctx context.Context, req CreatePriceRequest) (Price, error)
	CreateCheckoutSession(ctx context.Context, req CreateCheckoutSessionRequest) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, ID string) (CheckoutSession, error)
}

type stripeRepository struct {
	baseURL   string
	secretKey string
	logger    *logrus.Logger
	hc        *http.Client
}

func NewStripeRepository(baseURL string, secretKey string, logger *logrus.Logger, hc *http.Client) StripeRepository {
	return &stripeRepository{
		baseURL:   baseURL,
		secretKey: secretKey,
		logger:    logger,
		hc:        hc,
	}
}

// FindCustomerByEmail implements StripeRepository.
func (r *stripeRepository) FindCustomerByEmail(ctx context.Context, email string) (Customer, bool, error) {
	endpoint := fmt.Sprintf("%s/v1/customers?email=%s&limit=1", r.baseURL, url.QueryEscape(email))

	respBody, err := r.do(ctx, http.MethodGet, endpoint, nil, "an error occurred while looking up the payment processor customer")
	if err != nil {
		return Customer{}, false, err
	}

	var list customerList
	if err := json.Unmarshal(respBody, &list); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Customer{}, false, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while looking up the payment processor customer")
	}

	if len(list.Data) == 0 {
		return Customer{}, false, nil
	}

	return list.Data[0], true, nil
}

// CreateCustomer implements StripeRepository.
func (r *stripeRepository) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (Customer, error) {
	form := url.Values{}
	form.Set("email", req.Email)
	form.Set("name", req.Name)
	if req.Phone != "" {
		form.Set("phone", req.Phone)
	}
	setMetadata(form, req.Metadata)

	respBody, err := r.do(ctx, http.MethodPost, fmt.Sprintf("%s/v1/customers", r.baseURL), form, "an error occurred while creating the payment processor customer")
	if err != nil {
		return Customer{}, err
	}

	var customer Customer
	if err := json.Unmarshal(respBody, &customer); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Customer{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while creating the payment processor customer")
	}

	return customer, nil
}

// CreatePrice implements StripeRepository. The product is created inline so
// every reservation gets its own one-time-use price.
func (r *stripeRepository) CreatePrice(ctx context.Context, req CreatePriceRequest) (Price, error) {
	form := url.Values{}
	form.Set("product_data[name]", req.ProductName)
	form.Set("unit_amount", strconv.FormatInt(req.UnitAmount, 10))
	form.Set("currency", req.Currency)
	setMetadata(form, req.Metadata)

	respBody, err := r.do(ctx, http.MethodPost, fmt.Sprintf("%s/v1/prices", r.baseURL), form, "an error occurred while creating the reservation price")
	if err != nil {
		return Price{}, err
	}

	var price Price
	if err := json.Unmarshal(respBody, &price); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Price{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while creating the reservation price")
	}

	return price, nil
}

// CreateCheckoutSession implements StripeRepository.
func (r *stripeRepository) CreateCheckoutSession(ctx context.Context, req CreateCheckoutSessionRequest) (CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer", req.CustomerID)
	form.Set("line_items[0][price]", req.PriceID)
	form.Set("line_items[0][quantity]", strconv.FormatInt(req.Quantity, 10))
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	setMetadata(form, req.Metadata)

	respBody, err := r.do(ctx, http.MethodPost, fmt.Sprintf("%s/v1/checkout/sessions", r.baseURL), form, "an error occurred while creating the checkout session")
	if err != nil {
		return CheckoutSession{}, err
	}

	var cs CheckoutSession
	if err := json.Unmarshal(respBody, &cs); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return CheckoutSession{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while creating the checkout session")
	}

	return cs, nil
}

// GetCheckoutSession implements StripeRepository.
func (r *stripeRepository) GetCheckoutSession(ctx context.Context, ID string) (CheckoutSession, error) {
	endpoint := fmt.Sprintf("%s/v1/checkout/sessions/%s", r.baseURL, url.PathEscape(ID))

	respBody, err := r.do(ctx, http.MethodGet, endpoint, nil, "an error occurred while getting the checkout session")
	if err != nil {
		return CheckoutSession{}, err
	}

	var cs CheckoutSession
	if err := json.Unmarshal(respBody, &cs); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return CheckoutSession{}, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting the checkout session")
	}

	return cs, nil
}

func (r *stripeRepository) do(ctx context.Context, method, endpoint string, form url.Values, failureMessage string) ([]byte, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	hr, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, failureMessage)
	}

	hr.Header.Add("Accept", "application/json")
	hr.Header.Add("Authorization", fmt.Sprintf("Bearer %s", r.secretKey))
	if form != nil {
		hr.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	}

	hresp, err := r.hc.Do(hr)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, failureMessage)
	}

	defer hresp.Body.Close()

	respBody, err := io.ReadAll(hresp.Body)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, failureMessage)
	}

	if hresp.StatusCode < 200 || hresp.StatusCode > 299 {
		var ae apiError
		json.Unmarshal(respBody, &ae)
		r.logger.WithContext(ctx).WithFields(logrus.Fields{
			"status_code": hresp.StatusCode,
			"type":        ae.Error.Type,
			"code":        ae.Error.Code,
		}).Error(ae.Error.Message)
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, failureMessage)
	}

	return respBody, nil
}

func setMetadata(form url.Values, metadata map[string]string) {
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}
}
