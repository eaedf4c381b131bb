package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/KRIPAVERMA/mediabotbackend/internal/extractor"
	"github.com/KRIPAVERMA/mediabotbackend/internal/models"
	"github.com/KRIPAVERMA/mediabotbackend/internal/pkg/files"
	"github.com/KRIPAVERMA/mediabotbackend/internal/pkg/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// outputTemplate caps the title fragment so the resulting path stays inside
// filename limits on every filesystem the device mounts.
const outputTemplate = "%(title).80s.%(ext)s"

var ErrFileNotFound = errors.New("Download finished but file not found")

// DownloadService is the download adapter. It assembles one extractor
// configuration per call, invokes the extractor and normalizes the outcome.
// Calls are synchronous and independent; no state is shared between them, and
// no failure is retried here.
type DownloadService struct {
	ext           extractor.Extractor
	socketTimeout time.Duration
	retries       int
}

func NewDownloadService(ext extractor.Extractor, socketTimeout time.Duration, retries int) *DownloadService {
	return &DownloadService{
		ext:           ext,
		socketTimeout: socketTimeout,
		retries:       retries,
	}
}

// Download fetches a single media file into req.OutputDir. On failure zero or
// more partial files may remain in the directory; cleanup is the caller's
// concern.
func (s *DownloadService) Download(ctx context.Context, req models.DownloadRequest) (*models.Download, error) {
	logger := log.Logger.With("request_id", uuid.New().String(), "mode", req.Mode.String())

	opts := s.baseOptions(req.Mode.Platform)
	opts.Format = FormatPreference(req.Mode.Kind)
	opts.FormatSort = formatSort
	opts.OutputTemplate = filepath.Join(req.OutputDir, outputTemplate)

	before := time.Now()

	meta, err := s.ext.Extract(ctx, req.URL, true, opts)
	if err != nil {
		logger.Errorw("extraction failed", "error", err)
		return nil, classify(err)
	}

	path, lerr := s.locate(req.OutputDir, meta, before)
	if lerr != nil {
		logger.Errorw("downloaded file not located", "error", lerr)
		return nil, lerr
	}

	title := meta.Title
	if title == "" {
		title = "media"
	}

	if fi, statErr := os.Stat(path); statErr == nil {
		logger.Infow("download finished",
			"file", filepath.Base(path),
			"size", humanize.Bytes(uint64(fi.Size())),
		)
	}

	return &models.Download{
		Title:    title,
		Filename: filepath.Base(path),
		Filepath: path,
	}, nil
}

// Info fetches title, duration and thumbnail without downloading any media.
func (s *DownloadService) Info(ctx context.Context, url string) (*models.Info, error) {
	meta, err := s.ext.Extract(ctx, url, false, extractor.Options{
		UserAgent: mobileUserAgent,
	})
	if err != nil {
		return nil, classify(err)
	}

	info := &models.Info{
		Title:     meta.Title,
		Duration:  meta.Duration,
		Thumbnail: meta.Thumbnail,
	}
	if info.Title == "" {
		info.Title = "Unknown"
	}

	return info, nil
}

// locate resolves the artifact on disk: first the path the extractor reports
// after writing, then the predicted one, then a scan for the newest file in
// the directory. The extension often changes once the tool has inspected the
// actual stream, which is why prediction alone is not enough.
func (s *DownloadService) locate(dir string, meta *extractor.Metadata, before time.Time) (string, error) {
	for _, candidate := range []string{meta.Filepath, meta.Filename} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	found, err := files.NewestSince(dir, before)
	if err != nil {
		return "", newError(KindFilesystem, err)
	}
	if found == "" {
		return "", newError(KindFilesystem, ErrFileNotFound)
	}

	return found, nil
}

func (s *DownloadService) baseOptions(p models.Platform) extractor.Options {
	return extractor.Options{
		UserAgent:     UserAgentFor(p),
		SocketTimeout: s.socketTimeout,
		Retries:       s.retries,
		NoPlaylist:    true,
		GeoBypass:     true,
	}
}

// DownloadMedia is the wire-level download operation. It accepts the raw mode
// selector and always answers with a serialized record, collapsing every
// failure to a single message string.
func (s *DownloadService) DownloadMedia(ctx context.Context, url, outputDir, mode string) string {
	m, err := models.ParseMode(mode)
	if err != nil {
		return models.MarshalRecord(models.NewDownloadError(err.Error()))
	}

	dl, err := s.Download(ctx, models.DownloadRequest{
		URL:       url,
		OutputDir: outputDir,
		Mode:      m,
	})
	if err != nil {
		return models.MarshalRecord(models.NewDownloadError(err.Error()))
	}

	return models.MarshalRecord(models.NewDownloadSuccess(dl))
}

// GetInfo is the wire-level metadata query.
func (s *DownloadService) GetInfo(ctx context.Context, url string) string {
	info, err := s.Info(ctx, url)
	if err != nil {
		return models.MarshalRecord(models.NewInfoError(err.Error()))
	}

	return models.MarshalRecord(models.NewInfoSuccess(info))
}
