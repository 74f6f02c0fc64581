package services

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

const backupsToKeep = 10

type snapshot struct {
	Profile    models.SchoolProfile `json:"profile"`
	Categories []models.FeeCategory `json:"categories"`
	History    []models.Receipt     `json:"history"`
	Queue      []string             `json:"queue"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// StartBackupService starts the background backup task
func StartBackupService(sess *session.Session, dir string, interval time.Duration) {
	go func() {
		log.Printf("Backup service started, interval %s", interval)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := WriteBackup(sess, dir); err != nil {
				log.Printf("Error writing backup: %v", err)
			}
		}
	}()
}

// WriteBackup snapshots the full application state into a timestamped
// JSON file and prunes old snapshots.
func WriteBackup(sess *session.Session, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	snap := snapshot{
		Profile:    sess.Profile(),
		Categories: sess.Categories(),
		History:    sess.History(),
		Queue:      sess.QueueIDs(),
		CreatedAt:  time.Now(),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	name := filepath.Join(dir, "state_"+snap.CreatedAt.Format("20060102_150405")+".json")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return err
	}
	log.Printf("Backup written: %s", name)

	pruneBackups(dir)
	return nil
}

func pruneBackups(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "state_*.json"))
	if err != nil || len(matches) <= backupsToKeep {
		return
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-backupsToKeep] {
		if err := os.Remove(old); err != nil {
			log.Printf("Error pruning backup %s: %v", old, err)
		}
	}
}
