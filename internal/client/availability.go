package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/google/uuid"

	"github.com/yourneighborhoodchef/airmon/internal/config"
	"github.com/yourneighborhoodchef/airmon/internal/headers"
	"github.com/yourneighborhoodchef/airmon/internal/logging"
	"github.com/yourneighborhoodchef/airmon/internal/notify"
	"github.com/yourneighborhoodchef/airmon/internal/stats"
	"github.com/yourneighborhoodchef/airmon/internal/term"
)

// outOfStockMarker is the literal the storefront embeds in the server-action
// response while the variant is unavailable. Its absence on a 200 is the
// in-stock signal.
const outOfStockMarker = "OUT_OF_STOCK"

type cartLine struct {
	CartID       string `json:"cartId"`
	BottleHandle string `json:"bottleHandle"`
	FlavorHandle string `json:"flavorHandle"`
	Country      string `json:"country"`
	Language     string `json:"language"`
}

// Checker runs a single availability probe per call and folds the outcome
// into the shared statistics.
type Checker struct {
	product  config.Product
	client   Doer
	stats    *stats.Statistics
	log      *logging.Logger
	notifier *notify.Fanout
	reporter *term.Reporter
}

func NewChecker(
	product config.Product,
	client Doer,
	st *stats.Statistics,
	log *logging.Logger,
	notifier *notify.Fanout,
	reporter *term.Reporter,
) *Checker {
	return &Checker{
		product:  product,
		client:   client,
		stats:    st,
		log:      log,
		notifier: notifier,
		reporter: reporter,
	}
}

func (c *Checker) requestBody() ([]byte, error) {
	return json.Marshal([]cartLine{{
		CartID:       c.product.CartID,
		BottleHandle: c.product.BottleHandle,
		FlavorHandle: c.product.FlavorHandle,
		Country:      c.product.Country,
		Language:     c.product.Language,
	}})
}

// Check performs one probe. Every failure mode is absorbed into the error
// counter and a log line; the caller only learns whether the bottle became
// purchasable. Exactly one outcome counter is incremented per call.
func (c *Checker) Check() bool {
	c.stats.RecordCheck()
	defer c.reporter.Refresh()

	checkID := uuid.NewString()

	body, err := c.requestBody()
	if err != nil {
		return c.fail(checkID, fmt.Errorf("build request body: %w", err))
	}

	req, err := http.NewRequest(http.MethodPost, c.product.URL, bytes.NewReader(body))
	if err != nil {
		return c.fail(checkID, fmt.Errorf("build request: %w", err))
	}
	req.Header = headers.Build()

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(checkID, fmt.Errorf("checking availability: %w", err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(checkID, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		c.stats.RecordError()
		c.log.Error("Unexpected status code: %d (check %s)", resp.StatusCode, checkID)
		return false
	}

	if strings.Contains(string(payload), outOfStockMarker) {
		c.stats.RecordOutOfStock()
		c.log.Warning("Still out of stock...")
		return false
	}

	c.stats.RecordInStock()
	c.log.Success("IN STOCK! Sending notifications...")
	c.notifier.Send(
		"AirUp Bottle Available!",
		fmt.Sprintf("%s is now in stock. Go buy it!", c.product.BottleHandle),
		notify.StatusSuccess,
	)
	return true
}

func (c *Checker) fail(checkID string, err error) bool {
	c.stats.RecordError()
	c.log.Error("Error %s (check %s)", err, checkID)
	return false
}
