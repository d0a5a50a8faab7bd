// Package echo wires the checkout backend endpoints into an Echo router.
package echo

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	checkout "github.com/sockshop/checkout"
	"github.com/sockshop/checkout/types"
)

// HandlerOptions is the options for the checkout routes.
type HandlerOptions struct {
	Currency       string
	PublishableKey string
	CardStyle      interface{}
}

// Options is the type for the options for the checkout routes.
type Options func(*HandlerOptions)

// WithCurrency sets the intent currency. Defaults to "usd".
func WithCurrency(currency string) Options {
	return func(options *HandlerOptions) {
		options.Currency = currency
	}
}

// WithPublishableKey sets the processor publishable key served to the page.
func WithPublishableKey(key string) Options {
	return func(options *HandlerOptions) {
		options.PublishableKey = key
	}
}

// WithCardStyle sets the card widget style served to the page.
func WithCardStyle(style interface{}) Options {
	return func(options *HandlerOptions) {
		options.CardStyle = style
	}
}

// RegisterRoutes registers the checkout API on the router.
func RegisterRoutes(e *echo.Echo, proc checkout.Processor, opts ...Options) {
	options := &HandlerOptions{
		Currency:  "usd",
		CardStyle: checkout.DefaultCardStyle,
	}
	for _, opt := range opts {
		opt(options)
	}

	e.POST("/api/payment_intents", CreatePaymentIntentHandler(proc, options))
	e.GET("/api/checkout_config", CheckoutConfigHandler(options))
}

// CreatePaymentIntentHandler creates a payment intent on the processor for
// the requested amount and replies 201 with the intent's client secret.
func CreatePaymentIntentHandler(proc checkout.Processor, options *HandlerOptions) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error: "failed to read request body",
				Code:  checkout.ErrCodeInvalidRequest,
			})
		}

		if err := types.ValidateCreateIntentRequest(body); err != nil {
			return c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error: err.Error(),
				Code:  checkout.ErrCodeInvalidRequest,
			})
		}

		var req types.CreateIntentRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error: err.Error(),
				Code:  checkout.ErrCodeInvalidRequest,
			})
		}

		intent, err := proc.CreateIntent(c.Request().Context(), req.Amount, options.Currency)
		if err != nil {
			return c.JSON(http.StatusBadGateway, types.ErrorResponse{
				Error: err.Error(),
				Code:  errorCode(err),
			})
		}

		return c.JSON(http.StatusCreated, types.CreateIntentResponse{Secret: intent.Secret})
	}
}

// CheckoutConfigHandler serves the publishable key and card style the page
// needs to mount the card widget.
func CheckoutConfigHandler(options *HandlerOptions) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, types.CheckoutConfig{
			PublishableKey: options.PublishableKey,
			CardStyle:      options.CardStyle,
		})
	}
}

func errorCode(err error) string {
	if pe, ok := err.(*checkout.PaymentError); ok {
		return pe.Code
	}
	return checkout.ErrCodeUnknown
}
