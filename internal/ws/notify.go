package ws

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const EventCatalogUpdated = "catalog_updated"

type CatalogUpdatedEvent struct {
	Type       string   `json:"type"`
	CompanyIDs []string `json:"company_ids"`
	Source     string   `json:"source"`
	Timestamp  string   `json:"timestamp"`
}

// Notifier publishes catalog events on a hub.
type Notifier struct {
	hub    *Hub
	source string
	logger *zap.Logger
	now    func() time.Time
}

func NewNotifier(hub *Hub, source string, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{hub: hub, source: source, logger: logger, now: time.Now}
}

func (n *Notifier) CatalogUpdated(_ context.Context, companyIDs []string) {
	if n == nil || n.hub == nil {
		return
	}
	if companyIDs == nil {
		companyIDs = []string{}
	}
	evt := CatalogUpdatedEvent{
		Type:       EventCatalogUpdated,
		CompanyIDs: companyIDs,
		Source:     n.source,
		Timestamp:  n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		n.logger.Error("encode catalog event", zap.Error(err))
		return
	}
	n.hub.Broadcast(b)
}
