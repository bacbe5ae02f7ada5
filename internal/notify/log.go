package notify

import "github.com/sirupsen/logrus"

// LogNotifier пишет уведомления в лог приложения.
// Используется, когда внешний брокер не сконфигурирован.
type LogNotifier struct {
	l *logrus.Logger
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(recipientID, message string) {
	n.l.WithField("recipient", recipientID).Info(message)
}
