// Package gin wires the checkout backend endpoints into a Gin engine.
package gin

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	checkout "github.com/sockshop/checkout"
	"github.com/sockshop/checkout/types"
)

// HandlerOptions is the options for the checkout routes.
type HandlerOptions struct {
	Currency       string
	PublishableKey string
	CardStyle      interface{}
	StaticDir      string
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

// WithStaticDir serves the storefront build directory, with an index.html
// fallback for client-side routes.
func WithStaticDir(dir string) Options {
	return func(options *HandlerOptions) {
		options.StaticDir = dir
	}
}

// RegisterRoutes registers the checkout API (and optionally the static
// storefront) on the engine.
func RegisterRoutes(r *gin.Engine, proc checkout.Processor, opts ...Options) {
	options := &HandlerOptions{
		Currency:  "usd",
		CardStyle: checkout.DefaultCardStyle,
	}
	for _, opt := range opts {
		opt(options)
	}

	r.POST("/api/payment_intents", CreatePaymentIntentHandler(proc, options))
	r.GET("/api/checkout_config", CheckoutConfigHandler(options))

	if options.StaticDir != "" {
		r.NoRoute(spaHandler(options.StaticDir))
	}
}

// CreatePaymentIntentHandler creates a payment intent on the processor for
// the requested amount and replies 201 with the intent's client secret.
func CreatePaymentIntentHandler(proc checkout.Processor, options *HandlerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{
				Error: "failed to read request body",
				Code:  checkout.ErrCodeInvalidRequest,
			})
			return
		}

		if err := types.ValidateCreateIntentRequest(body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{
				Error: err.Error(),
				Code:  checkout.ErrCodeInvalidRequest,
			})
			return
		}

		var req types.CreateIntentRequest
		if err := json.Unmarshal(body, &req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{
				Error: err.Error(),
				Code:  checkout.ErrCodeInvalidRequest,
			})
			return
		}

		intent, err := proc.CreateIntent(c.Request.Context(), req.Amount, options.Currency)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadGateway, types.ErrorResponse{
				Error: err.Error(),
				Code:  errorCode(err),
			})
			return
		}

		c.JSON(http.StatusCreated, types.CreateIntentResponse{Secret: intent.Secret})
	}
}

// CheckoutConfigHandler serves the publishable key and card style the page
// needs to mount the card widget.
func CheckoutConfigHandler(options *HandlerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.CheckoutConfig{
			PublishableKey: options.PublishableKey,
			CardStyle:      options.CardStyle,
		})
	}
}

// spaHandler serves files from the build directory and falls back to
// index.html for any path that is not a file, so client-side routes work
// on refresh.
func spaHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	}
}

func errorCode(err error) string {
	if pe, ok := err.(*checkout.PaymentError); ok {
		return pe.Code
	}
	return checkout.ErrCodeUnknown
}
