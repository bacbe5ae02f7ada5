package domain

type OrderStatusType string

// Известные статусы доставки. UpdateDeliveryStatus намеренно принимает любую строку,
// поэтому перечисление не закрытое.
const (
	OrderStatusPending        OrderStatusType = "Pending"
	OrderStatusOutForDelivery OrderStatusType = "OutForDelivery"
	OrderStatusDelivered      OrderStatusType = "Delivered"
	OrderStatusCancelled      OrderStatusType = "Cancelled"
)
