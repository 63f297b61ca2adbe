package handlers

import (
	"fmt"

	"github.com/FG-IT/spree-paypal-express/config"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
)

// ProducerTopic is the topic to which the paypal payment created kafka message is sent
const ProducerTopic = "paypal-payment-created"

// ProducerSchemaName is the schema which will be used to send the paypal payment created kafka message with
const ProducerSchemaName = "paypal-payment-created"

// paymentCreated represents the avro schema of the paypal payment created message
type paymentCreated struct {
	OrderID   string `avro:"order_id"`
	PaymentID string `avro:"payment_id"`
}

// producePaymentMessage handles creating a producer, marshalling the ids into the correct avro schema and sending
// the message to the topic defined in ProducerTopic
func producePaymentMessage(orderID, paymentID string) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config for kafka message production: [%v]", err)
	}

	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%v]", err)
	}
	paymentCreatedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%v]", err)
	}
	producerSchema := &avro.Schema{
		Definition: paymentCreatedSchema,
	}

	message, err := prepareKafkaMessage(orderID, paymentID, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
	}
	return nil
}

// prepareKafkaMessage is pulled out of producePaymentMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(orderID, paymentID string, paymentCreatedSchema avro.Schema) (*producer.Message, error) {
	messageBytes, err := paymentCreatedSchema.Marshal(paymentCreated{OrderID: orderID, PaymentID: paymentID})
	if err != nil {
		return nil, fmt.Errorf("error marshalling paypal payment created message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
