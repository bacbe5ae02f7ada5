package notify

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaNotifier публикует уведомления в топик брокера по принципу fire-and-forget.
// Сообщения складываются в буферизованный канал и пишутся фоновой горутиной,
// так что оформление заказа на брокер никогда не ждет.
type KafkaNotifier struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

func NewKafkaNotifier(brokers []string, topic string, buf int) *KafkaNotifier {
	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Start запускает горутину доставки. При отмене контекста дописывает остаток
// буфера и закрывает writer.
func (n *KafkaNotifier) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				// канал не закрываем: Notify может конкурентно писать в него во время остановки
				for {
					select {
					case m := <-n.inbox:
						_ = n.w.WriteMessages(context.Background(), m)
					default:
						_ = n.w.Close()
						close(n.closeCh)
						return
					}
				}
			case m := <-n.inbox:
				_ = n.w.WriteMessages(context.Background(), m)
			}
		}
	}()
}

// Notify ставит сообщение в очередь доставки. Переполненный буфер не блокирует
// вызывающего — сообщение молча отбрасывается.
func (n *KafkaNotifier) Notify(recipientID, message string) {
	select {
	case n.inbox <- kafka.Message{
		Key:   []byte(recipientID),
		Value: []byte(message),
		Time:  time.Now(),
	}:
	default:
	}
}

// WaitClosed ждет, пока горутина доставки дописала буфер после отмены контекста.
func (n *KafkaNotifier) WaitClosed() { <-n.closeCh }
