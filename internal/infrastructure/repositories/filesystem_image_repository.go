package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"wada-stylist/internal/domain/entities"
	domainrepos "wada-stylist/internal/domain/repositories"
	"wada-stylist/internal/domain/valueobjects"
)

// GeneratedURLPrefix is where the generated directory is served.
const GeneratedURLPrefix = "/generated"

var listableExtensions = []string{".png", ".jpg", ".jpeg"}

type FilesystemImageRepository struct {
	baseDir string
	now     func() time.Time
}

func NewFilesystemImageRepository(baseDir string) (*FilesystemImageRepository, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", baseDir, err)
	}
	return &FilesystemImageRepository{
		baseDir: baseDir,
		now:     time.Now,
	}, nil
}

var _ domainrepos.ImageRepository = (*FilesystemImageRepository)(nil)

func (r *FilesystemImageRepository) Save(ctx context.Context, sessionID string, image *valueobjects.ImageData) (*entities.StoredImage, error) {
	folder, err := r.sessionFolder(sessionID)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session folder: %w", err)
	}

	// 同一ミリ秒の衝突を避ける
	millis := r.now().UnixMilli()
	var filename string
	for {
		filename = fmt.Sprintf("outfit_%d%s", millis, image.Format().Extension())
		if _, err := os.Stat(filepath.Join(folder, filename)); errors.Is(err, os.ErrNotExist) {
			break
		}
		millis++
	}

	if err := os.WriteFile(filepath.Join(folder, filename), image.Data(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	slog.Info("Image saved", "sessionID", sessionID, "filename", filename)

	return &entities.StoredImage{
		Filename:  filename,
		URL:       r.imageURL(sessionID, filename),
		Timestamp: millis,
		Size:      int64(image.Size()),
	}, nil
}

// List returns the session's images, newest first.
func (r *FilesystemImageRepository) List(ctx context.Context, sessionID string) ([]entities.StoredImage, error) {
	folder, err := r.sessionFolder(sessionID)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(folder)
	if errors.Is(err, os.ErrNotExist) {
		return []entities.StoredImage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session images: %w", err)
	}

	images := []entities.StoredImage{}
	for _, entry := range entries {
		if entry.IsDir() || !isListable(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		images = append(images, entities.StoredImage{
			Filename:  entry.Name(),
			URL:       r.imageURL(sessionID, entry.Name()),
			Timestamp: info.ModTime().UnixMilli(),
			Size:      info.Size(),
		})
	}

	sort.SliceStable(images, func(i, j int) bool {
		if images[i].Timestamp == images[j].Timestamp {
			return images[i].Filename > images[j].Filename
		}
		return images[i].Timestamp > images[j].Timestamp
	})

	return images, nil
}

// Delete removes one file. Names that resolve outside the session folder are rejected.
func (r *FilesystemImageRepository) Delete(ctx context.Context, sessionID, filename string) error {
	folder, err := r.sessionFolder(sessionID)
	if err != nil {
		return err
	}

	target := filepath.Join(folder, filename)
	if filename == "" || filepath.Dir(target) != folder {
		return valueobjects.NewFailure(valueobjects.FailureForbidden, "Access denied", nil).WithUserMessage("Access denied")
	}

	if err := os.Remove(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return valueobjects.NewFailure(valueobjects.FailureNotFound, "Image not found", nil).WithUserMessage("Image not found")
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}

	slog.Info("Deleted image", "sessionID", sessionID, "filename", filename)
	return nil
}

func (r *FilesystemImageRepository) Cleanup(ctx context.Context, sessionID string) error {
	folder, err := r.sessionFolder(sessionID)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(folder); err != nil {
		return fmt.Errorf("failed to remove session folder: %w", err)
	}
	slog.Info("Deleted session folder", "sessionID", sessionID)
	return nil
}

func (r *FilesystemImageRepository) FolderPath(sessionID string) string {
	return path.Join(GeneratedURLPrefix, sessionID)
}

func (r *FilesystemImageRepository) sessionFolder(sessionID string) (string, error) {
	if sessionID == "" || sessionID == "." || sessionID == ".." || filepath.Base(sessionID) != sessionID {
		return "", valueobjects.NewFailure(valueobjects.FailureForbidden, "invalid session id", nil).WithUserMessage("Access denied")
	}
	return filepath.Join(r.baseDir, sessionID), nil
}

func (r *FilesystemImageRepository) imageURL(sessionID, filename string) string {
	return path.Join(GeneratedURLPrefix, sessionID, filename)
}

func isListable(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range listableExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
