// Package health provides health status reporting for the poster harness,
// primarily the readiness of the engine handle as exposed over the service
// surfaces.
package health
