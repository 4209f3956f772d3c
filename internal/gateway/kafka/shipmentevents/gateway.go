package shipmentevents

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"celeris/internal/entities"
	"celeris/pkg/logger"
)

// Gateway публикует события жизненного цикла отправления в Kafka.
// Вызывается ПОСЛЕ коммита транзакции, поэтому ошибку наверх не отдает:
// откатывать бизнес-мутацию из-за недоступного брокера нельзя. Сбой
// публикации — это потерянное уведомление, не потерянное отправление.
type Gateway struct {
	producer producer
	topic    string
	log      gatewayLogger
}

func New(log gatewayLogger, producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
		log:      log.With(logger.NewField("topic", topic)),
	}
}

func (g *Gateway) ShipmentChanged(_ context.Context, event entities.ShipmentEvent) {
	message := fromDomain(event)

	payload, err := json.Marshal(message)
	if err != nil {
		g.log.Error("marshal shipment event",
			logger.NewField("shipment_id", event.ShipmentID),
			logger.NewField("error", err),
		)
		EventsPublishedTotal.WithLabelValues(message.Status, "marshal_error").Inc()
		return
	}

	start := time.Now()
	partition, offset, err := g.producer.SendMessage(&sarama.ProducerMessage{
		Topic: g.topic,
		// ключ — id отправления: события одной посылки идут в один partition
		Key:   sarama.StringEncoder(strconv.FormatInt(event.ShipmentID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		g.log.Error("publish shipment event",
			logger.NewField("shipment_id", event.ShipmentID),
			logger.NewField("status", message.Status),
			logger.NewField("error", err),
		)
		EventsPublishedTotal.WithLabelValues(message.Status, "error").Inc()
		EventPublishDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return
	}

	g.log.Info("shipment event published",
		logger.NewField("shipment_id", event.ShipmentID),
		logger.NewField("status", message.Status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	EventsPublishedTotal.WithLabelValues(message.Status, "ok").Inc()
	EventPublishDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
}
