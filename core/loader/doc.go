// Package loader registers HTTP features on the fiber app.
//
// A feature reports whether it can run with the collaborators it was given,
// e.g. backups need both a storage client and a durable store, and the Manager
// mounts only the enabled ones:
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(adminFeature)
//	mgr.Register(backup.NewFeature(store, client, cfg.Storage, logg))
//	err := mgr.LoadAll(app)
//
// Registering a second feature under the same name replaces the first.
package loader
