package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"heatwatch/internal/config"
	"heatwatch/internal/domain"
	"heatwatch/internal/port"
	"heatwatch/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportLink points at an uploaded report.
type ReportLink struct {
	Region    string    `json:"region"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReportService renders region reports.
type ReportService interface {
	// WriteText streams the text report for region to w and returns the
	// suggested download name.
	WriteText(ctx context.Context, region string, w io.Writer) (string, error)
	// PublishXLSX renders the workbook, stores it and returns a time-limited link.
	PublishXLSX(ctx context.Context, region string) (*ReportLink, error)
}

type reportService struct {
	regions RegionService
	storage port.ObjectStorage
	cfg     *config.S3Config
	now     func() time.Time
}

// NewReportService creates a new ReportService implementation.
func NewReportService(regions RegionService, storage port.ObjectStorage, cfg *config.S3Config) ReportService {
	return &reportService{regions: regions, storage: storage, cfg: cfg, now: time.Now}
}

func (s *reportService) WriteText(ctx context.Context, region string, w io.Writer) (string, error) {
	snap, err := s.regions.Snapshot(ctx, region)
	if err != nil {
		return "", err
	}
	// Render into memory first so a failure never leaves a partial body.
	var buf bytes.Buffer
	if err := report.RenderText(&buf, snap); err != nil {
		return "", err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return "", fmt.Errorf("report.WriteText: %w", err)
	}
	return report.Filename(snap.Region, "txt", snap.GeneratedAt), nil
}

func (s *reportService) PublishXLSX(ctx context.Context, region string) (*ReportLink, error) {
	snap, err := s.regions.Snapshot(ctx, region)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := report.RenderXLSX(&buf, snap); err != nil {
		return nil, err
	}

	filename := report.Filename(snap.Region, "xlsx", snap.GeneratedAt)
	key := fmt.Sprintf("reports/%s/%s", uuid.New(), filename)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        &buf,
		ContentType: xlsxContentType,
		Filename:    filename,
	})
	if err != nil {
		slog.Error("report upload failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, domain.ErrUploadFailed
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("report.PublishXLSX presign: %w", err)
	}
	return &ReportLink{
		Region:    snap.Region,
		Filename:  filename,
		URL:       url,
		ExpiresAt: s.now().UTC().Add(time.Duration(s.cfg.PresignExpiry) * time.Second),
	}, nil
}
