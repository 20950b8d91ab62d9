package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"campaignadmin/internal/config"
	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

// ReportExporter persists a report result and returns where it can be fetched.
type ReportExporter interface {
	Export(ctx context.Context, entries []models.ReportEntry) (*models.ReportExport, error)
}

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3ReportExporter writes reports as CSV objects under reports/.
type S3ReportExporter struct {
	uploader      objectUploader
	bucket        string
	publicBaseURL string
	newKey        func() string
}

func NewS3ReportExporter(cfg *config.S3Config) *S3ReportExporter {
	return &S3ReportExporter{
		uploader:      manager.NewUploader(cfg.Client),
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		newKey:        func() string { return fmt.Sprintf("reports/%s.csv", uuid.NewString()) },
	}
}

func (e *S3ReportExporter) Export(ctx context.Context, entries []models.ReportEntry) (*models.ReportExport, error) {
	var buf bytes.Buffer
	if err := writeReportCSV(&buf, entries); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	key := e.newKey()
	out, err := e.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return nil, interfaces.Unavailable("upload report", err)
	}

	url := out.Location
	if e.publicBaseURL != "" {
		url = strings.TrimRight(e.publicBaseURL, "/") + "/" + key
	}

	return &models.ReportExport{Key: key, URL: url, Rows: len(entries)}, nil
}

var reportHeader = []string{
	"submission_id", "user_id", "campaign_id", "campaign_name", "location_nm",
	"status", "photo_id", "remarks", "created_at", "campaign_end_date", "campaign_status",
}

func writeReportCSV(w io.Writer, entries []models.ReportEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.UserID,
			e.CampaignID,
			e.Campaign.Name,
			e.LocationNm,
			string(e.Status),
			e.PhotoID,
			e.Remarks,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.Campaign.EndDate.Format(models.DayLayout),
			string(e.Campaign.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
