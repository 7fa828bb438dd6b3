package crm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"lead-service/internal/config"
	"lead-service/internal/domain/entities"
)

// Client writes registrations into Bitrix24 as a contact followed by a deal.
// Its methods never return Go errors: every failure is folded into a Result.
type Client struct {
	contactURL string
	dealURL    string
	transport  *transport
}

func NewClient(cfg config.CRMConfig) (*Client, error) {
	proxy := http.ProxyFromEnvironment
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parse CRM_PROXY_URL: %w", err)
		}
		proxy = http.ProxyURL(proxyURL)
	}

	return &Client{
		contactURL: cfg.ContactURL,
		dealURL:    cfg.DealURL,
		transport:  newTransport(cfg.Timeout, proxy, cfg.MaxAttempts, cfg.RetryDelay),
	}, nil
}

func (c *Client) CreateContact(ctx context.Context, registration *entities.Registration) Result {
	o, res := c.call(ctx, c.contactURL, newContactRequest(registration), "Unknown error creating contact")
	if o == nil {
		return res
	}

	log.WithFields(log.Fields{
		"registration_id": registration.Id,
		"contact_id":      o.id,
	}).Info("bitrix24 contact created")
	return Result{Success: true, Data: Data{ContactID: o.id}}
}

func (c *Client) CreateDeal(ctx context.Context, registration *entities.Registration, contactID int64) Result {
	o, res := c.call(ctx, c.dealURL, newDealRequest(registration, contactID), "Unknown error creating deal")
	if o == nil {
		return res
	}

	log.WithFields(log.Fields{
		"registration_id": registration.Id,
		"deal_id":         o.id,
	}).Info("bitrix24 deal created")
	return Result{Success: true, Data: Data{DealID: o.id}}
}

// ProcessRegistration creates the contact and then the deal. A failed contact stops
// the flow; a failed deal yields a partial success that keeps the contact id.
func (c *Client) ProcessRegistration(ctx context.Context, registration *entities.Registration) Result {
	contact := c.CreateContact(ctx, registration)
	if !contact.Success {
		return contact
	}
	contactID := contact.Data.ContactID

	deal := c.CreateDeal(ctx, registration, contactID)
	if !deal.Success {
		return Result{
			Success: false,
			Data:    Data{ContactID: contactID, PartialSuccess: true},
			Errors:  deal.Errors,
		}
	}

	return Result{
		Success: true,
		Data:    Data{ContactID: contactID, DealID: deal.Data.DealID},
	}
}

// call returns the created outcome, or nil and the failure Result to hand back.
func (c *Client) call(ctx context.Context, endpoint string, payload request, fallback string) (*outcome, Result) {
	if endpoint == "" {
		return nil, failure(CodeException, "Exception: Bitrix24 endpoint is not configured")
	}

	resp, err := c.transport.post(ctx, endpoint, payload)
	if err != nil {
		code, message := describe(err)
		log.WithError(err).WithFields(log.Fields{"endpoint": endpoint, "code": code}).Error("bitrix24 request failed")
		return nil, failure(code, message)
	}

	o, err := parseReply(resp.body, fallback)
	if err != nil {
		log.WithError(err).WithField("status", resp.status).Error("bitrix24 response could not be decoded")
		if resp.status >= http.StatusBadRequest {
			return nil, failure(CodeAPIError, fmt.Sprintf("Bitrix24 responded with status %d", resp.status))
		}
		return nil, failure(CodeException, fmt.Sprintf("Exception: %v", err))
	}
	if !o.created() {
		log.WithFields(log.Fields{"endpoint": endpoint, "status": resp.status}).Errorf("bitrix24 rejected request: %s", o.rejected)
		return nil, failure(CodeAPIError, o.rejected)
	}
	return &o, Result{}
}
