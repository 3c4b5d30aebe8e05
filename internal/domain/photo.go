package domain

import "time"

// Photo is an append-only picture attached to a batch. FilePath is relative
// to the uploads directory; the file itself is managed outside the domain.
type Photo struct {
	ID        int64
	BatchID   int64
	FilePath  string
	Caption   *string
	TakenAt   time.Time
	Stage     PhotoStage
	CreatedAt time.Time
}

// SelectThumbnail picks the representative image for a batch.
// photos must be ordered by (TakenAt, CreatedAt) ascending.
//
// Finished batches prefer the first "end" photo and fall back to the first
// "start" photo. Running batches only use the first "start" photo.
func SelectThumbnail(status BatchStatus, photos []Photo) *string {
	if status.IsFinished() {
		if p := firstWithStage(photos, PhotoStageEnd); p != nil {
			return p
		}
	}
	return firstWithStage(photos, PhotoStageStart)
}

func firstWithStage(photos []Photo, stage PhotoStage) *string {
	for i := range photos {
		if photos[i].Stage == stage {
			path := photos[i].FilePath
			return &path
		}
	}
	return nil
}
