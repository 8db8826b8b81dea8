// Package dbmetrics wraps *sql.DB so every query is counted and timed
// through the shared prometheus collectors. Repositories depend on the
// DBExecutor interface and work against either *sql.DB or the wrapper.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/outpost-paintball/booking-service/pkg/metrics"
)

// DBExecutor is the subset of *sql.DB the repositories use.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// DB wraps *sql.DB with query metrics.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap returns a metrics-recording wrapper around db.
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps db and starts a background collector publishing
// connection-pool stats every 15 seconds until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.DBOpenConns.WithLabelValues("in_use").Set(float64(stats.InUse))
				m.DBOpenConns.WithLabelValues("open").Set(float64(stats.OpenConnections))
				m.DBIdleConns.WithLabelValues("idle").Set(float64(stats.Idle))
			}
		}
	}()

	return wrapped
}

func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// QueryContext runs a query returning rows.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext runs a query returning at most one row.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// ExecContext runs a statement without returning rows.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}
