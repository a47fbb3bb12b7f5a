package client

import (
	"chat-rpc/domain/chat"
	"context"
	"log/slog"
	"slices"
	"time"
)

const DefaultPollInterval = 2 * time.Second

// Poller periodically fetches the messages a user has not seen yet in a room
// and the room's member list. It runs as a supervised worker.
type Poller struct {
	log      *slog.Logger
	source   MessageSource
	username string
	room     string
	interval time.Duration

	lastSeq uint64
	seen    map[uint64]struct{}
	members []string

	messages chan chat.Message
	changes  chan []string
}

func NewPoller(log *slog.Logger, source MessageSource, username, room string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		log:      log,
		source:   source,
		username: username,
		room:     room,
		interval: interval,
		seen:     make(map[uint64]struct{}),
		messages: make(chan chat.Message, 64),
		changes:  make(chan []string, 8),
	}
}

// Messages yields every new message once, in log order.
func (p *Poller) Messages() <-chan chat.Message { return p.messages }

// Members yields the member list each time it changes.
func (p *Poller) Members() <-chan []string { return p.changes }

// Skip marks messages as already displayed, typically the join history.
func (p *Poller) Skip(messages []chat.Message) {
	for _, m := range messages {
		p.markSeen(m.Seq)
	}
}

func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.Poll(ctx); err != nil && ctx.Err() == nil {
			p.log.Warn("Poll failed", "room", p.room, "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Poll runs a single fetch cycle.
func (p *Poller) Poll(ctx context.Context) error {
	messages, err := p.source.ReceiveMessages(ctx, p.username, p.room, p.lastSeq)
	if err != nil {
		return err
	}
	for _, m := range messages {
		if _, ok := p.seen[m.Seq]; ok {
			continue
		}
		p.markSeen(m.Seq)
		select {
		case p.messages <- m:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	members, err := p.source.ListUsers(ctx, p.room)
	if err != nil {
		return err
	}
	if p.members != nil && slices.Equal(p.members, members) {
		return nil
	}
	p.members = slices.Clone(members)
	if p.members == nil {
		p.members = []string{}
	}
	select {
	case p.changes <- slices.Clone(p.members):
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (p *Poller) markSeen(seq uint64) {
	p.seen[seq] = struct{}{}
	if seq > p.lastSeq {
		p.lastSeq = seq
	}
}
