package network

import (
	"encoding/json"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"cortexview/config"
	"cortexview/core"
	"cortexview/engine"
	"cortexview/event"
)

// Client connects to the activity feed and translates wire messages
// into simulation events. Connection failure is terminal: the client
// reports ingress-down once and the generator drives the scene for
// the rest of the session. No reconnect is attempted.
type Client struct {
	cfg   config.NetworkConfig
	world *engine.World
	log   *slog.Logger

	sessionID string

	conn     net.Conn
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	downOnce sync.Once

	statDropped *atomic.Int64
}

// NewClient creates an ingress client for the given world
func NewClient(cfg config.NetworkConfig, world *engine.World, log *slog.Logger) *Client {
	return &Client{
		cfg:         cfg,
		world:       world,
		log:         log,
		sessionID:   uuid.NewString(),
		stopChan:    make(chan struct{}),
		statDropped: world.Resource.Status.Ints.Get("ingress.dropped"),
	}
}

// SessionID returns the uuid announced in the hello frame
func (c *Client) SessionID() string {
	return c.sessionID
}

// Start dials the feed and begins the read loop. A failed dial is
// reported as ingress-down immediately.
func (c *Client) Start() {
	core.Go(func() {
		conn, err := net.DialTimeout("tcp", c.cfg.Address, c.cfg.ConnectTimeout.Std())
		if err != nil {
			c.reportDown("connect: " + err.Error())
			return
		}
		c.conn = conn

		if err := c.sendHello(); err != nil {
			conn.Close()
			c.reportDown("hello: " + err.Error())
			return
		}

		c.log.Info("ingress connected", "address", c.cfg.Address, "session", c.sessionID)
		c.world.PushEvent(event.TypeIngressConnected, &event.IngressStatusPayload{SessionID: c.sessionID})

		c.wg.Add(1)
		core.Go(c.readLoop)
	})
}

// Stop closes the connection and waits for the read loop
func (c *Client) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
		if c.conn != nil {
			c.conn.Close()
		}
	})
	c.wg.Wait()
}

func (c *Client) sendHello() error {
	body, err := json.Marshal(HelloPayload{
		SessionID: c.sessionID,
		Client:    "cortexview",
	})
	if err != nil {
		return err
	}
	msg := &Message{Type: MsgHello, Payload: body}
	return msg.Encode(c.conn)
}

func (c *Client) readLoop() {
	defer c.wg.Done()

	for {
		select {
		case <-c.stopChan:
			return
		default:
		}

		if err := c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout.Std())); err != nil {
			c.reportDown("deadline: " + err.Error())
			return
		}

		msg, err := Decode(c.conn)
		if err != nil {
			select {
			case <-c.stopChan:
				// Shutdown close, not a failure
			default:
				c.reportDown("read: " + err.Error())
			}
			return
		}

		c.dispatch(msg)
	}
}

// dispatch translates a wire message into a queued simulation event.
// Malformed payloads are dropped with no state changes.
func (c *Client) dispatch(msg *Message) {
	switch msg.Type {
	case MsgHeartbeat:
		// Keepalive only

	case MsgActivity:
		var p ActivityPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || p.Component == "" {
			c.drop("activity", msg.Payload)
			return
		}
		c.world.PushEvent(event.TypeComponentActivity, &event.ComponentActivityPayload{
			Component: p.Component,
			Intensity: p.Intensity,
		})

	case MsgHealth:
		var p HealthPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			c.drop("health", msg.Payload)
			return
		}
		c.world.PushEvent(event.TypeHealthUpdate, &event.HealthUpdatePayload{
			Overall:     p.Metrics.Overall,
			Memory:      p.Metrics.Memory,
			Training:    p.Metrics.Training,
			Connections: p.Metrics.Connections,
		})

	case MsgBulk:
		var p BulkPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || len(p.Components) == 0 {
			c.drop("bulk", msg.Payload)
			return
		}
		entries := make([]event.ComponentActivityPayload, 0, len(p.Components))
		for _, entry := range p.Components {
			if entry.Component == "" {
				c.statDropped.Add(1)
				continue
			}
			entries = append(entries, event.ComponentActivityPayload{
				Component: entry.Component,
				Intensity: entry.Intensity,
			})
		}
		if len(entries) > 0 {
			c.world.PushEvent(event.TypeBulkUpdate, &event.BulkUpdatePayload{Components: entries})
		}

	default:
		c.drop("unknown", nil)
	}
}

func (c *Client) drop(kind string, payload []byte) {
	c.statDropped.Add(1)
	c.log.Debug("dropping malformed ingress message", "kind", kind, "bytes", len(payload))
}

// reportDown logs the failure once and hands the session to the
// fallback generator
func (c *Client) reportDown(reason string) {
	c.downOnce.Do(func() {
		c.log.Warn("ingress connection lost", "reason", reason)
		c.world.PushEvent(event.TypeIngressDown, &event.IngressStatusPayload{
			SessionID: c.sessionID,
			Reason:    reason,
		})
	})
}
