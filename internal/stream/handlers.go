package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:hashtag", websocket.New(func(c *websocket.Conn) {
		sub := hub.Register(c.Params("hashtag"))

		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range sub.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}

		// Unregister closes Send, which lets the writer drain and exit.
		hub.Unregister(sub)
		<-done
	}))
}
