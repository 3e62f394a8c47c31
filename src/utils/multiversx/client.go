package multiversx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/logger"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RawTransaction is a transaction record exactly as returned by the gateway.
// The gateway does not guarantee a stable shape, so no fields are assumed here.
type RawTransaction map[string]interface{}

// Client for the ledger gateway REST API
type Client struct {
	config  *config.Config
	log     *logrus.Entry
	client  *resty.Client
	limiter *rate.Limiter
}

func NewClient(config *config.Config) (self *Client) {
	self = new(Client)
	self.config = config
	self.log = logger.NewSublogger("gateway-client")

	self.limiter = rate.NewLimiter(rate.Limit(config.Gateway.RequestsPerSecond), 1)

	self.client = resty.New().
		SetBaseURL(config.Gateway.Url).
		SetTimeout(config.Gateway.RequestTimeout).
		SetHeader("Accept", "application/json")

	return
}

// Downloads the most recent transactions of the given account, newest first.
// Smart contract results are included so that contract calls are visible.
func (self *Client) GetAccountTransactions(ctx context.Context, address string, size int) (out []RawTransaction, err error) {
	err = self.limiter.Wait(ctx)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	resp, err := self.client.R().
		SetContext(ctx).
		SetQueryParam("size", fmt.Sprintf("%d", size)).
		SetQueryParam("order", "desc").
		SetQueryParam("withScResults", "true").
		Get("/accounts/" + address + "/transactions")
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	if resp.IsError() {
		self.log.WithField("status", resp.StatusCode()).
			WithField("body", string(resp.Body())).
			WithField("url", resp.Request.URL).
			Debug("Gateway returned an error")
		return nil, &FetchError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	err = json.Unmarshal(resp.Body(), &out)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	return
}
