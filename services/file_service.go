package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"room-reservation-backend/errors"
	"room-reservation-backend/models"
	"room-reservation-backend/repository"
)

var allowedExtensions = []string{".png", ".jpg"}

// FileService coordinates image writes across the file store and the
// relational store. The ordering rules matter: on upload the file is written
// before the row so a failure can only leave a detectable orphan file, never a
// row pointing at nothing; on deletion the file's existence is verified first
// so an already-diverged pair is reported instead of papered over.
type FileService struct {
	repos      repository.Factory
	uploadsDir string
}

func NewFileService(repos repository.Factory, resourcesDir string) *FileService {
	return &FileService{
		repos:      repos,
		uploadsDir: filepath.Join(resourcesDir, "images"),
	}
}

// UploadsDir is where image files live; the router serves it statically.
func (s *FileService) UploadsDir() string { return s.uploadsDir }

func extensionAllowed(ext string) bool {
	for _, allowed := range allowedExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// drawImagePath draws identifiers until one names a file that does not exist
// in dir. A stat failure other than non-existence is returned; it would
// otherwise redraw forever against the same broken path.
func drawImagePath(dir, ext string) (uuid.UUID, string, error) {
	for {
		id := uuid.New()
		path := filepath.Join(dir, id.String()+ext)
		_, err := os.Stat(path)
		if stderrors.Is(err, fs.ErrNotExist) {
			return id, path, nil
		}
		if err != nil {
			return uuid.Nil, "", err
		}
		// name taken, draw again
	}
}

// StoreImage writes the file to disk under a freshly drawn identifier, then
// records the metadata row.
func (s *FileService) StoreImage(ctx context.Context, roomID uuid.UUID, fileName string, data []byte) (*models.Image, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !extensionAllowed(ext) {
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported file extension %q, allowed: %s", ext, strings.Join(allowedExtensions, ", ")))
	}

	uow := s.repos.New()
	if _, err := uow.Rooms().GetByID(ctx, roomID); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFound("room not found")
		}
		return nil, errors.Internal("failed to load room", err)
	}

	if err := os.MkdirAll(s.uploadsDir, 0755); err != nil {
		return nil, errors.Internal("failed to create uploads directory", err)
	}

	// The image id always matches a file name that did not exist before
	// this write.
	imageID, path, err := drawImagePath(s.uploadsDir, ext)
	if err != nil {
		return nil, errors.Internal("failed to stat image path", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, errors.Internal("failed to write image file", err)
	}

	image := &models.Image{ID: imageID, Path: path, RoomID: roomID}
	if err := image.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "invalid image", err)
	}

	uow.Images().Create(image)
	if err := uow.Save(ctx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInconsistency,
			fmt.Sprintf("image file %s was written but the database commit failed; orphan file left on disk", path), err)
	}
	return image, nil
}

type UploadFile struct {
	Name string
	Data []byte
}

// UploadSummary reports the outcome of a multi-file upload. Files are stored
// independently, so a mix of stored and rejected files is a normal result.
type UploadSummary struct {
	Uploaded    []models.Image `json:"uploaded"`
	NotUploaded []string       `json:"notUploaded"`
	TotalSize   int64          `json:"totalSize"`
}

// StoreImages stores each file independently against the extension allow-list.
func (s *FileService) StoreImages(ctx context.Context, roomID uuid.UUID, files []UploadFile) (*UploadSummary, error) {
	summary := &UploadSummary{Uploaded: []models.Image{}, NotUploaded: []string{}}
	for _, file := range files {
		image, err := s.StoreImage(ctx, roomID, file.Name, file.Data)
		if err != nil {
			if errors.CodeOf(err) == errors.ErrCodeInvalidInput {
				summary.NotUploaded = append(summary.NotUploaded, file.Name)
				continue
			}
			return summary, err
		}
		summary.Uploaded = append(summary.Uploaded, *image)
		summary.TotalSize += int64(len(file.Data))
	}
	return summary, nil
}

func (s *FileService) GetAllImages(ctx context.Context) ([]models.Image, error) {
	images, err := s.repos.New().Images().GetAll(ctx)
	if err != nil {
		return nil, errors.Internal("failed to load images", err)
	}
	return images, nil
}

func (s *FileService) GetImageByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	image, err := s.repos.New().Images().GetByID(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("image not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load image", err)
	}
	return image, nil
}

// DeleteImage removes the file, then the row. A row whose file is already
// gone is left intact and reported: silently dropping it would hide the bug
// that lost the file.
func (s *FileService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	uow := s.repos.New()
	image, err := uow.Images().GetByID(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFound("image not found")
	}
	if err != nil {
		return errors.Internal("failed to load image", err)
	}

	if _, err := os.Stat(image.Path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Inconsistency(fmt.Sprintf(
				"image %s exists in the database but its file %s is missing; no changes were applied", image.ID, image.Path))
		}
		return errors.Internal("failed to stat image file", err)
	}

	if err := os.Remove(image.Path); err != nil {
		return errors.Internal("failed to delete image file", err)
	}

	uow.Images().Delete(image)
	if err := uow.Save(ctx); err != nil {
		return errors.NewAppError(errors.ErrCodeInconsistency,
			fmt.Sprintf("image file %s was deleted but the database commit failed", image.Path), err)
	}
	return nil
}

// DeleteImagesForRoom deletes every image of a room, all or nothing: every
// backing file is checked before the first deletion, and one missing file
// aborts the whole batch with zero changes.
func (s *FileService) DeleteImagesForRoom(ctx context.Context, roomID uuid.UUID) error {
	uow := s.repos.New()
	images, err := uow.Images().ForRoom(ctx, roomID)
	if err != nil {
		return errors.Internal("failed to load images", err)
	}
	if len(images) == 0 {
		return nil
	}

	for _, image := range images {
		if _, err := os.Stat(image.Path); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return errors.Inconsistency(fmt.Sprintf(
					"image %s exists in the database but its file %s is missing; no changes were applied", image.ID, image.Path))
			}
			return errors.Internal("failed to stat image file", err)
		}
	}

	for i := range images {
		if err := os.Remove(images[i].Path); err != nil {
			return errors.Internal("failed to delete image file", err)
		}
		uow.Images().Delete(&images[i])
	}

	if err := uow.Save(ctx); err != nil {
		return errors.NewAppError(errors.ErrCodeInconsistency,
			fmt.Sprintf("image files for room %s were deleted but the database commit failed", roomID), err)
	}
	return nil
}
