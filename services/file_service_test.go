package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"room-reservation-backend/errors"
	"room-reservation-backend/models"
)

func newFileFixture(t *testing.T, uow *fakeUnitOfWork) *FileService {
	t.Helper()
	return NewFileService(fakeFactory{uow}, t.TempDir())
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatal(err)
	}
	return len(entries)
}

func TestDrawImagePath(t *testing.T) {
	dir := t.TempDir()

	id, path, err := drawImagePath(dir, ".png")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir || filepath.Base(path) != id.String()+".png" {
		t.Errorf("unexpected path %q for id %s", path, id)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("drawn path must not exist yet")
	}
}

func TestDrawImagePathStatFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte{1}, 0644); err != nil {
		t.Fatal(err)
	}

	// stat below a regular file fails with ENOTDIR, which is not
	// non-existence; the draw must give up instead of redrawing forever
	_, _, err := drawImagePath(filepath.Join(blocker, "images"), ".png")
	if err == nil {
		t.Fatal("expected an error when the uploads path cannot be stat'ed")
	}
}

func TestStoreImageRejectsUnsupportedExtension(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	svc := newFileFixture(t, uow)

	_, err := svc.StoreImage(context.Background(), room.ID, "photo.gif", []byte{1, 2, 3})
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if countFiles(t, svc.UploadsDir()) != 0 {
		t.Error("rejected upload must not leave files behind")
	}
	if len(uow.imagesByID) != 0 {
		t.Error("rejected upload must not leave rows behind")
	}
}

func TestStoreImageRoundTrip(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	svc := newFileFixture(t, uow)
	data := []byte("not really a jpeg, but bytes are bytes")

	image, err := svc.StoreImage(context.Background(), room.ID, "photo.JPG", data)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(image.Path) != ".jpg" {
		t.Errorf("stored path %q should carry the lowercased extension", image.Path)
	}

	loaded, err := svc.GetImageByID(context.Background(), image.ID)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(loaded.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(data) {
		t.Error("stored file content differs from the uploaded bytes")
	}
}

func TestStoreImageUnknownRoom(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newFileFixture(t, uow)

	_, err := svc.StoreImage(context.Background(), uuid.New(), "photo.png", []byte{1})
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if countFiles(t, svc.UploadsDir()) != 0 {
		t.Error("no file should be written for an unknown room")
	}
}

func TestStoreImageCommitFailureLeavesOrphanFile(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	uow.saveErr = os.ErrDeadlineExceeded
	svc := newFileFixture(t, uow)

	_, err := svc.StoreImage(context.Background(), room.ID, "photo.png", []byte{1, 2})
	if errors.CodeOf(err) != errors.ErrCodeInconsistency {
		t.Fatalf("expected INCONSISTENCY, got %v", err)
	}
	if countFiles(t, svc.UploadsDir()) != 1 {
		t.Error("the already-written file should remain on disk for inspection")
	}
	if len(uow.imagesByID) != 0 {
		t.Error("no row should exist after a failed commit")
	}
}

func TestStoreImagesMixedBatch(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	svc := newFileFixture(t, uow)

	summary, err := svc.StoreImages(context.Background(), room.ID, []UploadFile{
		{Name: "a.png", Data: []byte("aaaa")},
		{Name: "b.gif", Data: []byte("bb")},
		{Name: "c.jpg", Data: []byte("cc")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Uploaded) != 2 {
		t.Errorf("expected 2 uploaded, got %d", len(summary.Uploaded))
	}
	if len(summary.NotUploaded) != 1 || summary.NotUploaded[0] != "b.gif" {
		t.Errorf("expected b.gif rejected, got %v", summary.NotUploaded)
	}
	if summary.TotalSize != 6 {
		t.Errorf("expected total size 6, got %d", summary.TotalSize)
	}
	if len(uow.imagesByID) != 2 {
		t.Errorf("expected 2 rows, got %d", len(uow.imagesByID))
	}
}

func TestStoreImagesAllRejectedSummaryShape(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	svc := newFileFixture(t, uow)

	summary, err := svc.StoreImages(context.Background(), room.ID, []UploadFile{
		{Name: "a.gif", Data: []byte("aa")},
		{Name: "b.bmp", Data: []byte("bb")},
	})
	if err != nil {
		t.Fatal(err)
	}
	// both lists marshal as arrays even when empty
	if summary.Uploaded == nil {
		t.Error("Uploaded should be an empty slice, not nil")
	}
	if len(summary.Uploaded) != 0 || len(summary.NotUploaded) != 2 {
		t.Errorf("expected 0 uploaded and 2 rejected, got %d and %d",
			len(summary.Uploaded), len(summary.NotUploaded))
	}
	if summary.TotalSize != 0 {
		t.Errorf("TotalSize = %d, want 0", summary.TotalSize)
	}
}

func TestDeleteImage(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	svc := newFileFixture(t, uow)

	image, err := svc.StoreImage(context.Background(), room.ID, "photo.png", []byte{1})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteImage(context.Background(), image.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(image.Path); !os.IsNotExist(err) {
		t.Error("file should be gone after delete")
	}
	if len(uow.imagesByID) != 0 {
		t.Error("row should be gone after delete")
	}
}

func TestDeleteImageMissingFileKeepsRow(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	svc := newFileFixture(t, uow)
	image := models.Image{ID: uuid.New(), Path: filepath.Join(svc.UploadsDir(), "gone.png"), RoomID: room.ID}
	uow.imagesByID[image.ID] = image

	err := svc.DeleteImage(context.Background(), image.ID)
	if errors.CodeOf(err) != errors.ErrCodeInconsistency {
		t.Fatalf("expected INCONSISTENCY, got %v", err)
	}
	if len(uow.imagesByID) != 1 {
		t.Error("the row must stay so the divergence remains visible")
	}
}

func TestDeleteImagesForRoomAllOrNothing(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	svc := newFileFixture(t, uow)
	ctx := context.Background()

	stored, err := svc.StoreImage(ctx, room.ID, "a.png", []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	broken := models.Image{ID: uuid.New(), Path: filepath.Join(svc.UploadsDir(), "gone.jpg"), RoomID: room.ID}
	uow.imagesByID[broken.ID] = broken

	err = svc.DeleteImagesForRoom(ctx, room.ID)
	if errors.CodeOf(err) != errors.ErrCodeInconsistency {
		t.Fatalf("expected INCONSISTENCY, got %v", err)
	}
	if _, err := os.Stat(stored.Path); err != nil {
		t.Error("the intact image file must survive an aborted batch")
	}
	if len(uow.imagesByID) != 2 {
		t.Error("no rows may be deleted when the batch aborts")
	}
}

func TestDeleteImagesForRoom(t *testing.T) {
	uow := newFakeUnitOfWork()
	room := seedRoom(uow, "Seaside", 100)
	other := seedRoom(uow, "Alpine", 80)
	svc := newFileFixture(t, uow)
	ctx := context.Background()

	if _, err := svc.StoreImage(ctx, room.ID, "a.png", []byte{1}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.StoreImage(ctx, room.ID, "b.jpg", []byte{2}); err != nil {
		t.Fatal(err)
	}
	kept, err := svc.StoreImage(ctx, other.ID, "c.png", []byte{3})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteImagesForRoom(ctx, room.ID); err != nil {
		t.Fatal(err)
	}
	if len(uow.imagesByID) != 1 {
		t.Errorf("expected only the other room's image to remain, got %d rows", len(uow.imagesByID))
	}
	if _, err := os.Stat(kept.Path); err != nil {
		t.Error("the other room's file must be untouched")
	}
	if countFiles(t, svc.UploadsDir()) != 1 {
		t.Error("expected exactly one file left on disk")
	}

	// no images is not an error
	if err := svc.DeleteImagesForRoom(ctx, room.ID); err != nil {
		t.Fatal(err)
	}
}
