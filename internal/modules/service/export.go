package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/infra/blob"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	sheetSummary   = "Summary"
	sheetEVM       = "EVM"
	sheetTrend     = "Trend"
	sheetBurndown  = "Burndown"
	defaultPresign = 15 * time.Minute
)

var ErrExportStorageDisabled = errors.New("export storage is not configured")

type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadedExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	SizeB     int64     `json:"size_b"`
	SHA256    string    `json:"sha256"`
}

type ExportService interface {
	// Workbook renders the project's metrics, trend and burndown as xlsx.
	Workbook(ctx context.Context, projectID uuid.UUID, locale string) (*Export, error)
	// Upload stores the workbook and returns a presigned download URL.
	Upload(ctx context.Context, projectID uuid.UUID, locale string) (*UploadedExport, error)
}

type exportService struct {
	analytics AnalyticsService
	snapshots SnapshotService
	store     blob.ObjectStore
	expire    time.Duration
	now       Clock
	log       *zap.Logger
}

// NewExportService accepts a nil store; Upload then fails with
// ErrExportStorageDisabled.
func NewExportService(a AnalyticsService, snapshots SnapshotService, store blob.ObjectStore, expire time.Duration, now Clock, log *zap.Logger) ExportService {
	if expire <= 0 {
		expire = defaultPresign
	}
	return &exportService{
		analytics: a,
		snapshots: snapshots,
		store:     store,
		expire:    expire,
		now:       now,
		log:       log,
	}
}

func (s *exportService) Workbook(ctx context.Context, projectID uuid.UUID, locale string) (*Export, error) {
	m, err := s.analytics.ComputeAll(ctx, projectID, locale)
	if err != nil {
		return nil, err
	}
	trend, err := s.snapshots.Trend(ctx, projectID, 0)
	if err != nil {
		return nil, fmt.Errorf("load trend: %w", err)
	}
	burndown, err := s.analytics.Burndown(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load burndown: %w", err)
	}

	data, err := RenderWorkbook(m, trend, burndown)
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return &Export{
		Filename:    fmt.Sprintf("%s-metrics-%s.xlsx", m.ProjectCode, m.AsOf),
		ContentType: XLSXContentType,
		Data:        data,
	}, nil
}

func (s *exportService) Upload(ctx context.Context, projectID uuid.UUID, locale string) (*UploadedExport, error) {
	if s.store == nil {
		return nil, ErrExportStorageDisabled
	}
	exp, err := s.Workbook(ctx, projectID, locale)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s-%s", projectID, uuid.NewString()[:8], exp.Filename)
	meta, err := s.store.UploadBytes(ctx, key, exp.ContentType, exp.Data)
	if err != nil {
		s.log.Sugar().Errorw("export upload failed", "project_id", projectID, "key", key, "err", err)
		return nil, fmt.Errorf("upload export: %w", err)
	}
	url, err := s.store.PresignGet(ctx, key, s.expire)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	s.log.Sugar().Infow("export uploaded", "project_id", projectID, "key", key, "size_b", meta.SizeB)
	return &UploadedExport{
		Key:       key,
		URL:       url,
		ExpiresAt: s.now().Add(s.expire),
		SizeB:     meta.SizeB,
		SHA256:    meta.SHA256,
	}, nil
}

// RenderWorkbook lays out one sheet per view. Money is written as text to keep
// decimal precision.
func RenderWorkbook(m *analytics.Metrics, trend []model.ProjectMetricsSnapshot, b *analytics.Burndown) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{sheetEVM, sheetTrend, sheetBurndown} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	predicted := "n/a"
	if m.PredictedCompletionDate != nil {
		predicted = *m.PredictedCompletionDate
	}
	summary := [][]any{
		{"Field", "Value"},
		{"Code", m.ProjectCode},
		{"Name", m.ProjectName},
		{"Status", string(m.Status)},
		{"As of", m.AsOf},
		{"Start date", m.StartDate},
		{"End date", m.EndDate},
		{"Health score", m.HealthScore},
		{"At risk", m.AtRisk},
		{"Progress %", m.ProgressPercentage.String()},
		{"Expected progress %", m.ExpectedProgress},
		{"Velocity (tasks/week)", m.Velocity},
		{"Predicted completion", predicted},
		{"Days remaining", m.DaysRemaining},
		{"Tasks total", m.Tasks.Total},
		{"Tasks completed", m.Tasks.Completed},
		{"Tasks overdue", m.Tasks.Overdue},
		{"Budget consumed %", m.BudgetConsumedPercent},
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	e := m.EVM
	evm := [][]any{
		{"Figure", "Value"},
		{"Budget (BAC)", e.Budget.String()},
		{"Planned value (PV)", e.PlannedValue.String()},
		{"Earned value (EV)", e.EarnedValue.String()},
		{"Actual cost (AC)", e.ActualCost.String()},
		{"Cost variance (CV)", e.CostVariance.String()},
		{"Schedule variance (SV)", e.ScheduleVariance.String()},
		{"CPI", e.CPI.String()},
		{"SPI", e.SPI.String()},
		{"Estimate at completion (EAC)", e.EstimateAtCompletion.String()},
		{"Estimate to complete (ETC)", e.EstimateToComplete.String()},
		{"Variance at completion (VAC)", e.VarianceAtCompletion.String()},
	}
	if err := writeRows(f, sheetEVM, evm); err != nil {
		return nil, err
	}

	rows := [][]any{{"Date", "Health", "Progress %", "Completed", "Total", "Overdue", "Velocity", "CPI", "SPI"}}
	for _, s := range trend {
		rows = append(rows, []any{
			s.SnapshotDate.Format(model.DateLayout), s.HealthScore, s.ProgressPercentage.String(),
			s.TasksCompleted, s.TasksTotal, s.TasksOverdue, s.Velocity, s.CPI.String(), s.SPI.String(),
		})
	}
	if err := writeRows(f, sheetTrend, rows); err != nil {
		return nil, err
	}

	rows = [][]any{{"Date", "Ideal remaining", "Actual remaining"}}
	if b != nil {
		for i, d := range b.Dates {
			var actual any
			if b.ActualRemaining[i] != nil {
				actual = *b.ActualRemaining[i]
			}
			rows = append(rows, []any{d, b.IdealRemaining[i], actual})
		}
	}
	if err := writeRows(f, sheetBurndown, rows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
