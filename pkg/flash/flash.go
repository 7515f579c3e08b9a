// Package flash carries one-shot user messages from the request that
// queues them to the next page rendered for the same browser.
package flash

import "github.com/labstack/echo/v4"

const (
	CategorySuccess = "success"
	CategoryError   = "danger"
)

type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func Success(text string) Message { return Message{Category: CategorySuccess, Text: text} }
func Error(text string) Message   { return Message{Category: CategoryError, Text: text} }

// Store queues messages for a browser and hands them out once.
// Messages queued during a request are visible to Pop in the same request.
type Store interface {
	Add(c echo.Context, msg Message) error
	Pop(c echo.Context) ([]Message, error)
}
