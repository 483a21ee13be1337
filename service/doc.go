// Package service exposes the batch operations over NATS request-reply so
// host environments can drive the harness without linking it.
//
// Subjects (under a configurable prefix, default "poster"):
//
//	poster.normalize  {"addresses": [...]}            -> {"addresses": [...]}
//	poster.parse      {"addresses": [...]}            -> ten named columns
//	poster.get_field  {"addresses": [...], "field": "city"}
//	poster.set_field  {"addresses": [...], "field": "road", "replacements": [...]}
//	poster.health     (empty request)                 -> health.Status
//
// Nullable strings travel as JSON null. Invalid requests come back in an
// error envelope rather than as NATS-level failures; the batch semantics
// (length preservation, broadcast rules, null passthrough) are exactly
// those of postal.Processor.
package service
