// checkoutd serves the storefront build and the checkout API.
//
// Configuration is environment-driven:
//
//	PORT               listen port (default 3000)
//	PROCESSOR_URL      card processor API base URL; empty selects the
//	                   in-memory processor for local development
//	PROCESSOR_API_KEY  processor secret key
//	PUBLISHABLE_KEY    processor publishable key served to the page
//	STATIC_DIR         storefront build directory (default "build")
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	checkout "github.com/sockshop/checkout"
	checkouthttp "github.com/sockshop/checkout/http"
	checkoutgin "github.com/sockshop/checkout/pkg/gin"
	"github.com/sockshop/checkout/processor"
)

func main() {
	port := envOr("PORT", "3000")
	staticDir := envOr("STATIC_DIR", "build")

	var proc checkout.Processor
	if url := os.Getenv("PROCESSOR_URL"); url != "" {
		proc = checkouthttp.NewProcessorClient(&checkouthttp.ProcessorConfig{
			URL:    url,
			APIKey: os.Getenv("PROCESSOR_API_KEY"),
		})
	} else {
		log.Println("PROCESSOR_URL not set, using in-memory processor")
		proc = processor.NewMemory()
	}

	r := gin.Default()
	checkoutgin.RegisterRoutes(r, proc,
		checkoutgin.WithPublishableKey(os.Getenv("PUBLISHABLE_KEY")),
		checkoutgin.WithStaticDir(staticDir),
	)

	log.Printf("Running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
