// Package override talks to the remote status override store. Operator
// writes there take precedence over the status derived from the tabular
// sources, but the store is optional: every read failure degrades to
// "no override present".
package override

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
)

// Client reads and writes per-unit status overrides.
type Client struct {
	baseURL string
	http    *resty.Client
}

// New creates a client. An empty baseURL leaves the store unconfigured;
// Fetch then always reports no override and SetStatus fails.
func New(baseURL, authToken string, timeout time.Duration) *Client {
	c := resty.New().SetTimeout(timeout)
	if authToken != "" {
		c.SetAuthToken(authToken)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    c,
	}
}

// Configured reports whether a store URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Fetch reads the override record for a unit and returns its status.
// ok is false when the store is unconfigured, the unit has no record,
// the record has no usable status field, or the read fails in any way.
// Failures are logged at debug level and never surfaced to the lookup.
func (c *Client) Fetch(ctx context.Context, unitID string) (model.Status, bool) {
	if !c.Configured() {
		return "", false
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.unitURL(unitID))
	if err != nil {
		logrus.WithField("unit", unitID).WithError(err).
			Debug("override store unreachable, keeping tabular status")
		return "", false
	}
	if resp.IsError() {
		return "", false
	}

	var record map[string]any
	if err := json.Unmarshal(resp.Body(), &record); err != nil {
		logrus.WithField("unit", unitID).WithError(err).
			Debug("override record not valid JSON, keeping tabular status")
		return "", false
	}

	raw, ok := record["status"].(string)
	if !ok {
		return "", false
	}
	status, err := model.ParseStatus(raw)
	if err != nil {
		logrus.WithField("unit", unitID).WithError(err).
			Debug("override record malformed, keeping tabular status")
		return "", false
	}
	return status, true
}

// SetStatus upserts the override record for a unit with the new status.
// Other fields of an existing record are left untouched (merge
// semantics are the store's). The unit is not required to exist in the
// inventory. Unlike Fetch, write failures are returned to the caller.
func (c *Client) SetStatus(ctx context.Context, unitID string, status model.Status) error {
	if !c.Configured() {
		return fmt.Errorf("override store is not configured")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"status": string(status)}).
		Patch(c.unitURL(unitID))
	if err != nil {
		return fmt.Errorf("override store write: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("override store write: %s", resp.Status())
	}
	return nil
}

func (c *Client) unitURL(unitID string) string {
	return c.baseURL + "/units/" + unitID
}
