package model

import "time"

type ProductEventType string

const (
	ProductEventCreated ProductEventType = "created"
	ProductEventUpdated ProductEventType = "updated"
	ProductEventDeleted ProductEventType = "deleted"
	// seedなどで全件削除したとき
	ProductEventPurged ProductEventType = "purged"
)

// 商品の変更通知
type ProductEvent struct {
	Type       ProductEventType `json:"type"`
	ProductID  string           `json:"product_id,omitempty"`
	Slug       string           `json:"slug,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
