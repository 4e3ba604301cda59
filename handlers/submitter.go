package handlers

import (
	"context"

	"github.com/charlieallen/portfolio/pkg/contact"
)

// Submitter relays a contact submission. *contact.Service implements it.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) (*contact.Receipt, error)
}
