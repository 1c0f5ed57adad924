package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog/internal/config"
	"catalog/internal/domain/model"

	"github.com/segmentio/kafka-go"
)

// 1件ずつ送るのでバッチは待たない
const batchTimeout = 10 * time.Millisecond

// 商品イベントをKafkaへ送る
type ProductKafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           batchTimeout,
		ReadTimeout:            cfg.Timeout,
		WriteTimeout:           cfg.Timeout,
	}
}

// timeoutが0以下なら呼び出し側のctxだけに従う
func NewProductKafkaPublisher(writer *kafka.Writer, timeout time.Duration) *ProductKafkaPublisher {
	return &ProductKafkaPublisher{writer: writer, timeout: timeout}
}

// brokerが応答しなくてもtimeoutで諦める
func (p *ProductKafkaPublisher) Publish(ctx context.Context, e model.ProductEvent) error {
	msg, err := newMessage(e)
	if err != nil {
		return err
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *ProductKafkaPublisher) Close() error {
	return p.writer.Close()
}

// keyは商品ID。同じ商品のイベントは同じパーティションへ。全削除は"products"。
func messageKey(e model.ProductEvent) string {
	if e.ProductID == "" {
		return "products"
	}
	return e.ProductID
}

func newMessage(e model.ProductEvent) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode product event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(messageKey(e)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
		},
		Time: e.OccurredAt,
	}, nil
}

// Kafka未設定時
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, e model.ProductEvent) error { return nil }
