// Package mirror publishes picker changes to other terminals.
//
// While the picker runs with --mirror, a Hub receives every setting change
// through a stepper listener and pushes it as a JSON Event to each connected
// websocket client. A new client first receives the latest state of every
// setting, then live changes. The same state is served as a JSON array on
// /settings.
//
// The Server announces itself over mDNS as _camset._tcp so `camset watch`
// and `camset discover` can find it without an address.
//
// # Endpoints
//
//	GET /ws        websocket stream of Event objects
//	GET /settings  JSON array of the latest Event per setting
//
// # Concurrency
//
// Broadcast never blocks: each client has a buffered queue drained by its
// own writer goroutine, and a client whose queue is full is dropped. This
// keeps the picker's event loop free of network stalls.
package mirror
