// Package backup keeps copies of pairs files before syncopener replaces
// them.
//
// Backups are grouped by workspace. Each backup is a timestamped directory
// holding the copied files and a manifest.json with their original paths,
// permissions and SHA256 hashes:
//
//	<config dir>/backups/
//	└── {workspace key}/
//	    └── {timestamp}/
//	        ├── manifest.json
//	        └── .syncopener
//
// The workspace key is derived from the absolute workspace root, so two
// checkouts of the same repository keep separate histories.
//
//	mgr := backup.NewManager(backup.WithBackupDir(dir))
//	m, err := mgr.Backup(root, "init --force", []string{existing})
//	...
//	err = mgr.Restore(root, m.ID)
//
// Restore verifies every file against its recorded hash and returns
// [ErrBackupCorrupted] on a mismatch. Only the newest
// [DefaultRetentionCount] backups of a workspace are kept.
package backup
