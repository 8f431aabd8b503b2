package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dosada05/placement-system/storage"
)

// SnapshotArchiver stores the generated placement preview as a JSON object
// so a regenerated bracket can be compared with earlier ones.
type SnapshotArchiver struct {
	uploader storage.FileUploader
	now      func() time.Time
}

func NewSnapshotArchiver(uploader storage.FileUploader) *SnapshotArchiver {
	return &SnapshotArchiver{uploader: uploader, now: time.Now}
}

func (a *SnapshotArchiver) key(tournamentID int) string {
	return fmt.Sprintf("placement-snapshots/tournament_%d/%s.json", tournamentID, a.now().UTC().Format("20060102T150405Z"))
}

// Archive returns the public location of the stored snapshot, or "" when no
// uploader is configured.
func (a *SnapshotArchiver) Archive(ctx context.Context, preview *PlacementPreview) (string, error) {
	if a == nil || a.uploader == nil {
		return "", nil
	}

	payload, err := json.Marshal(preview)
	if err != nil {
		return "", fmt.Errorf("failed to encode placement snapshot: %w", err)
	}

	result, err := a.uploader.Upload(ctx, a.key(preview.TournamentID), "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	return result.Location, nil
}
