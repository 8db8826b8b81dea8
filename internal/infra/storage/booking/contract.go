package booking

import "github.com/outpost-paintball/booking-service/pkg/dbmetrics"

// DBExecutor is reused from dbmetrics so the repository works against
// *sql.DB and the metrics wrapper alike.
type DBExecutor = dbmetrics.DBExecutor
