package booking

import "github.com/travelhub/hotel-booking-service/pkg/dbmetrics"

// DBExecutor is the database surface the repository depends on. Both
// *sql.DB and the instrumented dbmetrics.DB satisfy it.
type DBExecutor = dbmetrics.DBExecutor
