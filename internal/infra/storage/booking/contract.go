package booking

import (
	"github.com/m04kA/AgriRent-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// columns порядок колонок совпадает с scanBooking
var columns = []string{
	"id",
	"equipment_id",
	"user_id",
	"owner_id",
	"start_date",
	"end_date",
	"days",
	"status",
	"base_amount",
	"transport_amount",
	"total_amount",
	"equipment_title",
	"pricing_type",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}
