// Package metric provides Prometheus metrics for the poster harness.
//
// A Registry wraps a dedicated prometheus.Registry, pre-registers the core
// harness metrics under the "poster" namespace, and lets components
// register their own collectors by service and metric name. Components
// treat a nil registry as "metrics disabled" and keep working.
package metric
