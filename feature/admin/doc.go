// Package admin exposes the generator engine over HTTP and acts as a
// standalone host for it.
//
// The service owns an in-memory world and the roster of online players. Host
// events arrive as JSON (validated against embedded JSON schemas), the service
// applies the block change a game server would make, and the engine decides
// what happens to the generator.
//
// # Components
//
//   - Service: applies block changes and forwards events to the engine.
//   - Handler: Fiber routes and Swagger annotations.
//   - Validator: compiled request schemas.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET  /generators : tracked generators (?world=, ?limit=).
//   - GET  /generators/types : generator types and palettes.
//   - GET  /generators/lookup : generator at ?world=&x=&y=&z=.
//   - GET  /generators/block : material at ?world=&x=&y=&z=.
//   - POST /generators/place : placement event.
//   - POST /generators/break : break event (intent in body or ?intent=1).
//   - POST /generators/reconcile : run one reconciliation pass now.
//   - POST /generators/worlds/:name/load : load a world, restore deferred rows.
//   - POST /generators/players : mark a player online.
//   - GET  /generators/players/:name/inventory : items a player holds.
//   - POST /generators/command : run `blocksgen` with {"args": [...]}.
//   - GET  /generators/complete : tab completion for ?line=.
package admin
