package stream

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Event is the wire shape fanned out to hashtag subscribers whenever the
// engine accepts a post or comment.
type Event struct {
	Type     string `json:"type"`
	AuthorID string `json:"author_id"`
	PostID   int    `json:"post_id"`
	Stance   string `json:"stance,omitempty"`
	Message  string `json:"message"`
}

// Hub fans engine events out to websocket subscribers keyed by hashtag.
// With a redis client it also bridges events across processes; without one
// it is purely local.
type Hub struct {
	redis       *redis.Client
	subscribers map[string]map[*Subscriber]struct{}
	mu          sync.RWMutex
}

type Subscriber struct {
	ID      string
	Hashtag string
	Send    chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:       redisClient,
		subscribers: map[string]map[*Subscriber]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(hashtag string) *Subscriber {
	sub := &Subscriber{
		ID:      uuid.NewString(),
		Hashtag: hashtag,
		Send:    make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[hashtag] == nil {
		h.subscribers[hashtag] = map[*Subscriber]struct{}{}
	}
	h.subscribers[hashtag][sub] = struct{}{}
	return sub
}

func (h *Hub) Unregister(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if tagSubs, ok := h.subscribers[sub.Hashtag]; ok {
		delete(tagSubs, sub)
		if len(tagSubs) == 0 {
			delete(h.subscribers, sub.Hashtag)
		}
	}
	close(sub.Send)
}

func (h *Hub) Broadcast(hashtag string, payload []byte) {
	h.mu.RLock()
	subs := h.subscribers[hashtag]
	h.mu.RUnlock()

	for sub := range subs {
		select {
		case sub.Send <- payload:
		default:
		}
	}

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(hashtag), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "feed:*:broadcast")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		hashtag := hashtagFromChannel(msg.Channel)
		h.mu.RLock()
		subs := h.subscribers[hashtag]
		h.mu.RUnlock()
		for sub := range subs {
			select {
			case sub.Send <- []byte(msg.Payload):
			default:
			}
		}
	}
}

func redisChannel(hashtag string) string {
	return "feed:" + hashtag + ":broadcast"
}

func hashtagFromChannel(ch string) string {
	// feed:{hashtag}:broadcast
	const prefix = "feed:"
	const suffix = ":broadcast"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
