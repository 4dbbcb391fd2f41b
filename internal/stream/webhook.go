package stream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agegold/driveralert/pkg/models"
)

// Notifier forwards fired alerts to an external channel.
type Notifier interface {
	Notify(cycle int, alerts []models.Alert) error
}

// webhookNotifier posts alerts at or above a severity floor to an HTTP
// endpoint as JSON.
type webhookNotifier struct {
	url     string
	minimum models.Severity
	client  *http.Client
}

// NewWebhookNotifier creates a Notifier that posts to the given URL. Alerts
// below minimum severity are filtered out before sending.
func NewWebhookNotifier(url string, minimum models.Severity) Notifier {
	return &webhookNotifier{
		url:     url,
		minimum: minimum,
		client:  &http.Client{},
	}
}

type webhookPayload struct {
	Cycle  int            `json:"cycle"`
	Alerts []webhookAlert `json:"alerts"`
}

type webhookAlert struct {
	Tag      string `json:"tag"`
	Severity string `json:"severity"`
	Text1    string `json:"text_1"`
	Text2    string `json:"text_2,omitempty"`
}

// Notify posts the alerts that clear the severity floor. It returns nil
// without making a request when none do.
func (n *webhookNotifier) Notify(cycle int, alerts []models.Alert) error {
	payload := webhookPayload{Cycle: cycle}
	for _, a := range alerts {
		if a.Severity < n.minimum {
			continue
		}
		payload.Alerts = append(payload.Alerts, webhookAlert{
			Tag:      a.Tag,
			Severity: a.Severity.String(),
			Text1:    a.Text1,
			Text2:    a.Text2,
		})
	}
	if len(payload.Alerts) == 0 {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting alert webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
	}
	return nil
}
