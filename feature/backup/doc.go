// Package backup copies the generators table to object storage and back.
//
// A backup is one object named <prefix>generators-<unix>-<id>.json.zst holding a
// zstd-compressed JSON Document with every persisted row. Export prunes the
// oldest backups beyond storage.retain. Import upserts rows and is meant to be
// run from the CLI while the server is stopped, since the running engine only
// reads the table at startup.
//
// # HTTP Endpoints
//
//   - GET  /backups : list backup objects.
//   - POST /backups : write a new backup.
package backup
