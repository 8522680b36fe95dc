package livefeed

import (
	"context"
	"time"

	"auction-spot/utils"
)

// EventType classifies a live auction event
type EventType string

const (
	EventBidPlaced     EventType = "bid_placed"
	EventAutoBidPlaced EventType = "auto_bid_placed"
	EventPlayerSold    EventType = "player_sold"
	EventAuctionStatus EventType = "auction_status"
	EventSnapshot      EventType = "snapshot" // first message on a new connection
)

// Event is pushed to every subscriber of an auction
type Event struct {
	Type      EventType `json:"type"`
	AuctionID string    `json:"auction_id"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher accepts events for fan-out
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards every event
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}

const subscriberBuffer = 16

type hubMsg interface{ isHubMsg() }

type subscribe struct {
	auctionID string
	id        string
	outbox    chan Event
}

type unsubscribe struct {
	auctionID string
	id        string
}

type publish struct {
	event Event
}

func (subscribe) isHubMsg()   {}
func (unsubscribe) isHubMsg() {}
func (publish) isHubMsg()     {}

// Hub owns the subscriber set of every auction. All mutations go through
// its inbox and are applied by a single goroutine.
type Hub struct {
	inbox       chan hubMsg
	subscribers map[string]map[string]chan Event // auctionID -> subscriberID -> outbox
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewHub starts a hub that runs until parent is cancelled or Shutdown is called
func NewHub(parent context.Context) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:       make(chan hubMsg, 64),
		subscribers: make(map[string]map[string]chan Event),
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	go h.loop()
	return h
}

// Publish queues an event for the subscribers of its auction
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	select {
	case h.inbox <- publish{event: event}:
	case <-h.ctx.Done():
	}
}

// Subscribe registers a subscriber for an auction. The returned channel is
// closed on unsubscribe or hub shutdown.
func (h *Hub) Subscribe(auctionID string) (<-chan Event, func()) {
	id := utils.GenerateID()
	out := make(chan Event, subscriberBuffer)
	if h.ctx.Err() != nil {
		close(out)
		return out, func() {}
	}

	select {
	case h.inbox <- subscribe{auctionID: auctionID, id: id, outbox: out}:
	case <-h.ctx.Done():
		close(out)
		return out, func() {}
	}

	return out, func() {
		select {
		case h.inbox <- unsubscribe{auctionID: auctionID, id: id}:
		case <-h.ctx.Done():
		}
	}
}

// Shutdown stops the hub and closes every subscriber channel
func (h *Hub) Shutdown() {
	h.cancel()
	<-h.done
}

// Done is closed once the hub loop has exited
func (h *Hub) Done() <-chan struct{} { return h.done }

func (h *Hub) loop() {
	defer close(h.done)
	for {
		select {
		case <-h.ctx.Done():
			for auctionID, subs := range h.subscribers {
				for _, out := range subs {
					close(out)
				}
				delete(h.subscribers, auctionID)
			}
			h.drain()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case subscribe:
				subs := h.subscribers[msg.auctionID]
				if subs == nil {
					subs = make(map[string]chan Event)
					h.subscribers[msg.auctionID] = subs
				}
				subs[msg.id] = msg.outbox

			case unsubscribe:
				subs := h.subscribers[msg.auctionID]
				if out, ok := subs[msg.id]; ok {
					close(out)
					delete(subs, msg.id)
				}
				if len(subs) == 0 {
					delete(h.subscribers, msg.auctionID)
				}

			case publish:
				for id, out := range h.subscribers[msg.event.AuctionID] {
					select {
					case out <- msg.event:
					default:
						// slow subscriber
						utils.Debug("livefeed: dropped event", map[string]any{
							"auction_id":    msg.event.AuctionID,
							"subscriber_id": id,
							"type":          msg.event.Type,
						})
					}
				}
			}
		}
	}
}

// drain closes the outboxes of subscriptions still queued at shutdown
func (h *Hub) drain() {
	for {
		select {
		case m := <-h.inbox:
			if s, ok := m.(subscribe); ok {
				close(s.outbox)
			}
		default:
			return
		}
	}
}
