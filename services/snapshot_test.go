package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotArchiver_Key(t *testing.T) {
	uploader := &fakeUploader{}
	archiver := NewSnapshotArchiver(uploader)
	archiver.now = func() time.Time {
		return time.Date(2024, 5, 17, 14, 3, 9, 0, time.FixedZone("MSK", 3*60*60))
	}

	location, err := archiver.Archive(context.Background(), &PlacementPreview{TournamentID: 7})
	require.NoError(t, err)

	assert.Equal(t, []string{"placement-snapshots/tournament_7/20240517T110309Z.json"}, uploader.keys)
	assert.Equal(t, "https://cdn.example.com/placement-snapshots/tournament_7/20240517T110309Z.json", location)
}

func TestSnapshotArchiver_WithoutUploader(t *testing.T) {
	location, err := NewSnapshotArchiver(nil).Archive(context.Background(), &PlacementPreview{TournamentID: 7})
	require.NoError(t, err)
	assert.Empty(t, location)

	var archiver *SnapshotArchiver
	location, err = archiver.Archive(context.Background(), &PlacementPreview{TournamentID: 7})
	require.NoError(t, err)
	assert.Empty(t, location)
}
