package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"lead-service/internal/config"
)

type smsContent struct {
	Text string `json:"text"`
}

type smsBody struct {
	Originator string     `json:"originator"`
	Content    smsContent `json:"content"`
}

type smsMessage struct {
	Recipient string  `json:"recipient"`
	MessageID string  `json:"message-id"`
	SMS       smsBody `json:"sms"`
}

type smsRequest struct {
	Messages []smsMessage `json:"messages"`
}

// SMSService delivers text messages through the HTTP SMS gateway.
type SMSService struct {
	apiURL   string
	login    string
	password string
	senderID string
	client   *http.Client
}

func NewSMSService(cfg config.SMSConfig) *SMSService {
	return &SMSService{
		apiURL:   cfg.APIURL,
		login:    cfg.Login,
		password: cfg.Password,
		senderID: cfg.SenderID,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *SMSService) Send(ctx context.Context, phone, text string) error {
	payload := smsRequest{
		Messages: []smsMessage{{
			Recipient: phone,
			MessageID: uuid.NewString(),
			SMS: smsBody{
				Originator: s.senderID,
				Content:    smsContent{Text: text},
			},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.login, s.password)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway responded with status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}

	log.WithField("phone", phone).Info("sms sent")
	return nil
}

// LogSMSSender writes messages to the log instead of sending them. Development only.
type LogSMSSender struct{}

func (LogSMSSender) Send(_ context.Context, phone, text string) error {
	log.WithField("phone", phone).Infof("sms gateway not configured, message: %s", text)
	return nil
}
