package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	dom "yuletide/internal/domain"
)

// GiftRequest is the JSON body for POST /gifts and PUT /gifts/{id}.
// Every field is optional; absent means "".
type GiftRequest struct {
	Kid          Text `json:"kid"`
	Item         Text `json:"item"`
	Link         Text `json:"link"`
	Helper       Text `json:"helper"`
	DeliveryDate Text `json:"deliveryDate"`
}

// Fields returns the full set of mutable columns.
func (r GiftRequest) Fields() dom.GiftFields {
	return dom.GiftFields{
		Kid:          string(r.Kid),
		Item:         string(r.Item),
		Link:         string(r.Link),
		Helper:       string(r.Helper),
		DeliveryDate: string(r.DeliveryDate),
	}
}

// Text accepts any JSON scalar. null, false, 0 and "" become "", true
// becomes "1" and other numbers keep their decimal text. Objects and
// arrays are rejected.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(x)
	case bool:
		*t = ""
		if x {
			*t = "1"
		}
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return err
		}
		*t = ""
		if f != 0 {
			*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
		}
	default:
		return fmt.Errorf("dto: expected a string, got %s", b)
	}
	return nil
}

type GiftResponse struct {
	ID           int64     `json:"id"`
	Kid          string    `json:"kid"`
	Item         string    `json:"item"`
	Link         string    `json:"link"`
	Helper       string    `json:"helper"`
	DeliveryDate string    `json:"deliveryDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by DELETE /gifts/{id}.
type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
