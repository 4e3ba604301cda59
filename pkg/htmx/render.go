package htmx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Renderable is the interface for OOB components.
// Compatible with templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds HTMX render configuration.
type Config struct {
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	PushURL       string
	Refresh       bool

	triggers     []string
	triggerData  map[string]any
	hasTriggerJS bool
}

// RenderOption configures HTMX render behavior.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets HTMX headers on the response. Must run before WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	h := w.Header()

	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, string(c.Reswap))
	}
	if c.PushURL != "" {
		h.Set(HeaderHXPushURL, c.PushURL)
	}
	if v := c.triggerHeader(); v != "" {
		h.Set(HeaderHXTrigger, v)
	}
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

// triggerHeader uses the plain comma form unless an event carries detail.
func (c *Config) triggerHeader() string {
	if len(c.triggers) == 0 {
		return ""
	}
	if !c.hasTriggerJS {
		return strings.Join(c.triggers, ", ")
	}

	events := make(map[string]any, len(c.triggers))
	for _, name := range c.triggers {
		events[name] = c.triggerData[name]
	}
	data, err := json.Marshal(events)
	if err != nil {
		return strings.Join(c.triggers, ", ")
	}
	return string(data)
}

func (c *Config) addTrigger(name string, detail any) {
	if c.triggerData == nil {
		c.triggerData = make(map[string]any)
	}
	if _, ok := c.triggerData[name]; !ok {
		c.triggers = append(c.triggers, name)
	}
	c.triggerData[name] = detail
	if detail != nil {
		c.hasTriggerJS = true
	}
}

// RenderOOB writes the out-of-band components after the main content.
func (c *Config) RenderOOB(ctx context.Context, w io.Writer) error {
	if c == nil {
		return nil
	}
	for _, comp := range c.OOBComponents {
		if err := comp.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// WithOOB appends out-of-band components to render after the main component.
// Components must include id and hx-swap-oob attributes.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget sets the HX-Retarget header to change the target element.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets the HX-Reswap header to change the swap strategy.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithPushURL sets the HX-Push-Url header. Pass "false" to prevent a history entry.
func WithPushURL(url string) RenderOption {
	return func(c *Config) {
		c.PushURL = url
	}
}

// WithTrigger fires client-side events named in HX-Trigger.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		for _, e := range events {
			c.addTrigger(e, nil)
		}
	}
}

// WithTriggerDetail fires an event carrying a JSON detail object.
// The header switches to its JSON form, {"event": detail}.
func WithTriggerDetail(event string, detail any) RenderOption {
	return func(c *Config) {
		c.addTrigger(event, detail)
	}
}

// WithRefresh sets the HX-Refresh header to force a full page refresh.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
