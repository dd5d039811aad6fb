package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/syncopener/cmd"
	"github.com/thoreinstein/syncopener/internal/backup"
	"github.com/thoreinstein/syncopener/internal/config"
	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/pairs"
)

var backupListJSON bool

func init() {
	backupListCmd.Flags().BoolVar(&backupListJSON, "json", false, "output in JSON format")
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "List and restore backups of the pairs file",
	Long: `syncopener backs up the workspace's pairs file before replacing it
(syncopener init --force). Backups are kept per workspace in the settings
directory; the newest five are retained.`,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups of the workspace's pairs file",
	Example: `  syncopener backup list
  syncopener backup list --json`,
	Args: cobra.NoArgs,
	RunE: runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore a backup of the pairs file",
	Long: `Restore a backup of the workspace's pairs file, the newest one unless
an ID from syncopener backup list is given. The current pairs file is
backed up before it is replaced.`,
	Example: `  syncopener backup restore
  syncopener backup restore 20260123T100712`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupRestore,
}

// backupManager returns the manager for backups in the settings directory.
func backupManager() *backup.Manager {
	backup.Version = cmd.Version
	return backup.NewManager(backup.WithBackupDir(filepath.Join(config.Dir(), "backups")))
}

// backupEntry is the JSON output of backup list.
type backupEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Reason    string    `json:"reason,omitempty"`
	Files     []string  `json:"files"`
	Version   string    `json:"syncopener_version"`
}

func runBackupList(c *cobra.Command, _ []string) error {
	root, err := workspaceRoot("")
	if err != nil {
		return err
	}

	manifests, err := backupManager().List(root)
	if err != nil && !errors.Is(err, backup.ErrNoBackupsFound) {
		return errors.NewSystemError(err, "")
	}

	out := c.OutOrStdout()
	if backupListJSON {
		entries := make([]backupEntry, len(manifests))
		for i, m := range manifests {
			entries[i] = backupEntry{ID: m.ID, CreatedAt: m.CreatedAt, Reason: m.Reason, Version: m.ToolVersion}
			for _, f := range m.Files {
				entries[i].Files = append(entries[i].Files, f.RelPath)
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "encoding output")
	}

	if len(manifests) == 0 {
		fmt.Fprintf(out, "No backups for %s\n", root)
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", bold("ID"), bold("CREATED"), bold("FILES"), bold("REASON"))
	for _, m := range manifests {
		files := ""
		for i, f := range m.Files {
			if i > 0 {
				files += ", "
			}
			files += f.RelPath
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			color.GreenString(m.ID),
			m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			files,
			m.Reason)
	}
	return errors.Wrap(tw.Flush(), "writing output")
}

func runBackupRestore(c *cobra.Command, args []string) error {
	root, err := workspaceRoot("")
	if err != nil {
		return err
	}
	mgr := backupManager()

	var m *backup.Manifest
	if len(args) == 1 {
		m, err = mgr.Get(root, args[0])
	} else {
		m, err = mgr.Latest(root)
	}
	if err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) {
			return errors.NewUserError(err, "Run: syncopener backup list")
		}
		return errors.NewSystemError(err, "")
	}

	out := c.OutOrStdout()
	// The restored file must not be shadowed by a pairs file of another format.
	if existing, _, err := pairs.Find(root); err == nil {
		saved, err := mgr.Backup(root, "backup restore "+m.ID, []string{existing})
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		fmt.Fprintf(out, "Backed up %s as %s\n", filepath.Base(existing), saved.ID)
		if err := os.Remove(existing); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "removing %s", existing), "")
		}
	}

	if err := mgr.Restore(root, m.ID); err != nil {
		return errors.NewSystemError(err, "The backup may be damaged; pick another with syncopener backup list")
	}
	fmt.Fprintf(out, "Restored backup %s\n", m.ID)
	if err := mgr.Retain(root); err != nil {
		return errors.NewSystemError(err, "")
	}
	return nil
}
