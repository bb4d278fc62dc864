// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/omnaris/scan-service/internal/authorization"
	"github.com/omnaris/scan-service/internal/csvenc"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/mailer"
	"github.com/omnaris/scan-service/internal/storage"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

const dateLayout = "2006-01-02"

// Filter narrows which unexported scans a new export captures. Dates are
// calendar days in the account's submitted form, widened to full-day bounds.
type Filter struct {
	FormKey  string `json:"form_key"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// Artifact is a rendered export ready to stream or attach.
type Artifact struct {
	Export   *types.Export
	Filename string
	Data     []byte
}

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	mail    mailer.EmailProviderInterface
	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(st StorageInterface, tx TxRunnerInterface, mail mailer.EmailProviderInterface, logger logging.LoggerInterface, tracer tracing.TracingInterface) *Service {
	s := new(Service)
	s.storage = st
	s.tx = tx
	s.mail = mail
	s.logger = logger
	s.tracer = tracer
	return s
}

type exportParams struct {
	FormKey  *string `json:"form_key"`
	FromDate *string `json:"from_date"`
	ToDate   *string `json:"to_date"`
}

// scanFilter widens the calendar-day bounds to [00:00:00, 23:59:59] so a
// single-day export captures the whole day.
func (f Filter) scanFilter() (types.ScanFilter, error) {
	sf := types.ScanFilter{FormKey: strings.TrimSpace(f.FormKey)}

	if v := strings.TrimSpace(f.FromDate); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return sf, ErrInvalidFilter
		}
		sf.From = &t
	}
	if v := strings.TrimSpace(f.ToDate); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, time.UTC)
		if err != nil {
			return sf, ErrInvalidFilter
		}
		t = t.Add(24*time.Hour - time.Second)
		sf.To = &t
	}
	if sf.From != nil && sf.To != nil && sf.To.Before(*sf.From) {
		return sf, ErrInvalidFilter
	}
	return sf, nil
}

func (f Filter) params() string {
	p := exportParams{}
	if v := strings.TrimSpace(f.FormKey); v != "" {
		p.FormKey = &v
	}
	if v := strings.TrimSpace(f.FromDate); v != "" {
		p.FromDate = &v
	}
	if v := strings.TrimSpace(f.ToDate); v != "" {
		p.ToDate = &v
	}
	raw, _ := json.Marshal(p)
	return string(raw)
}

// BuildExport captures every currently unexported scan matching the filter
// into a new export. Selection, claim and export creation run in one
// transaction so two concurrent builds can never share a scan.
func (s *Service) BuildExport(ctx context.Context, id types.Identity, filter Filter) (*types.Export, error) {
	ctx, span := s.tracer.Start(ctx, "exports.BuildExport")
	defer span.End()

	sf, err := filter.scanFilter()
	if err != nil {
		return nil, err
	}
	ownerID := authorization.OwnerScope(id)

	var export *types.Export
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		scanIDs, err := s.storage.SelectUnexportedScanIDs(ctx, id.AccountID, sf, ownerID)
		if err != nil {
			return fmt.Errorf("failed to select scans: %w", err)
		}
		if len(scanIDs) == 0 {
			return ErrEmptySelection
		}

		export, err = s.storage.CreateExport(ctx, &types.Export{
			AccountID: id.AccountID,
			CreatedBy: &id.UserID,
			Status:    types.ExportStatusReady,
			Format:    types.ExportFormatCSV,
			Params:    filter.params(),
			FromTS:    sf.From,
			ToTS:      sf.To,
			ScanCount: int64(len(scanIDs)),
		})
		if err != nil {
			return fmt.Errorf("failed to create export: %w", err)
		}
		if err := s.storage.LinkExportScans(ctx, export.ID, scanIDs); err != nil {
			return fmt.Errorf("failed to link scans: %w", err)
		}
		if err := s.storage.ClaimScans(ctx, id.AccountID, scanIDs, export.ID); err != nil {
			return fmt.Errorf("failed to claim scans: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptySelection) {
			return nil, ErrEmptySelection
		}
		return nil, err
	}

	s.logger.Infof("built export %s with %d scans for account %s", export.ID, export.ScanCount, id.AccountID)
	return export, nil
}

func (s *Service) ListExports(ctx context.Context, id types.Identity) ([]*types.Export, error) {
	ctx, span := s.tracer.Start(ctx, "exports.ListExports")
	defer span.End()

	return s.storage.ListExports(ctx, id.AccountID, authorization.OwnerScope(id))
}

func (s *Service) GetExport(ctx context.Context, id types.Identity, exportID string) (*types.Export, error) {
	ctx, span := s.tracer.Start(ctx, "exports.GetExport")
	defer span.End()

	export, err := s.storage.GetExportByID(ctx, id.AccountID, exportID, authorization.OwnerScope(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return export, nil
}

// DownloadExport renders the export's scans as CSV. The byte output is
// deterministic for a given export, so repeated downloads are identical.
func (s *Service) DownloadExport(ctx context.Context, id types.Identity, exportID string) (*Artifact, error) {
	ctx, span := s.tracer.Start(ctx, "exports.DownloadExport")
	defer span.End()

	return s.render(ctx, id, exportID)
}

func (s *Service) render(ctx context.Context, id types.Identity, exportID string) (*Artifact, error) {
	export, err := s.GetExport(ctx, id, exportID)
	if err != nil {
		return nil, err
	}
	scans, err := s.storage.ListScansByExportID(ctx, id.AccountID, export.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list export scans: %w", err)
	}
	data, err := csvenc.Encode(scans)
	if err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}

	filename := export.Filename
	if filename == "" {
		filename = fmt.Sprintf("export_%s_%d.csv", export.ID, time.Now().Unix())
	}
	return &Artifact{Export: export, Filename: filename, Data: data}, nil
}

// DeliverExport emails the rendered export as a CSV attachment, spending one
// token on success. Preconditions are checked in a fixed order before the
// provider is contacted: destination, balance, export visibility.
func (s *Service) DeliverExport(ctx context.Context, id types.Identity, exportID, destination string) (*types.DeliveryRecord, error) {
	ctx, span := s.tracer.Start(ctx, "exports.DeliverExport")
	defer span.End()

	destination = strings.TrimSpace(destination)
	if destination == "" || !strings.Contains(destination, "@") {
		return nil, ErrInvalidEmail
	}

	account, err := s.storage.GetAccountByID(ctx, id.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.Tokens < 1 {
		return nil, ErrInsufficientTokens
	}

	artifact, err := s.render(ctx, id, exportID)
	if err != nil {
		return nil, err
	}
	export := artifact.Export

	messageID, sendErr := s.mail.Send(ctx, &mailer.Message{
		To:      destination,
		Subject: fmt.Sprintf("Scan Export #%s", export.ID),
		HTML:    deliveryBody(export, destination),
		Attachments: []mailer.Attachment{{
			Filename:    artifact.Filename,
			Content:     artifact.Data,
			ContentType: "text/csv",
		}},
	})

	now := time.Now().UTC()
	if sendErr != nil {
		s.logger.Errorf("delivery of export %s via %s failed: %v", export.ID, s.mail.Name(), sendErr)
		detail := sendErr.Error()
		var rec *types.DeliveryRecord
		err = s.tx.WithTx(ctx, func(ctx context.Context) error {
			if err := s.storage.UpdateScanDelivery(ctx, id.AccountID, export.ID, destination, types.DeliveryStatusFailed, now); err != nil {
				return fmt.Errorf("failed to track scans: %w", err)
			}
			rec, err = s.storage.CreateDeliveryRecord(ctx, &types.DeliveryRecord{
				AccountID: id.AccountID,
				ExportID:  &export.ID,
				ToEmail:   destination,
				Status:    types.DeliveryStatusFailed,
				Provider:  s.mail.Name(),
				Error:     &detail,
				SentAt:    now,
			})
			if err != nil {
				return fmt.Errorf("failed to record delivery: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return rec, ErrDeliveryFailed
	}

	var rec *types.DeliveryRecord
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.UpdateScanDelivery(ctx, id.AccountID, export.ID, destination, types.DeliveryStatusSent, now); err != nil {
			return fmt.Errorf("failed to track scans: %w", err)
		}
		rec, err = s.storage.CreateDeliveryRecord(ctx, &types.DeliveryRecord{
			AccountID: id.AccountID,
			ExportID:  &export.ID,
			ToEmail:   destination,
			Status:    types.DeliveryStatusSent,
			Provider:  s.mail.Name(),
			MessageID: &messageID,
			SentAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to record delivery: %w", err)
		}
		if err := s.storage.SpendToken(ctx, id.AccountID); err != nil {
			// The email is already out; a lost race on the last token is
			// logged rather than rolled back.
			if errors.Is(err, storage.ErrInsufficientBalance) {
				s.logger.Warnf("account %s balance exhausted before delivery %s was charged", id.AccountID, rec.ID)
				return nil
			}
			return fmt.Errorf("failed to spend token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.storage.MarkExportSent(ctx, id.AccountID, export.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Warnf("failed to mark export %s as sent: %v", export.ID, err)
	}

	s.logger.Infof("delivered export %s to %s, message %s", export.ID, destination, messageID)
	return rec, nil
}

// ListDeliveries returns the account's delivery audit log. Admins only.
func (s *Service) ListDeliveries(ctx context.Context, id types.Identity) ([]*types.DeliveryRecord, error) {
	ctx, span := s.tracer.Start(ctx, "exports.ListDeliveries")
	defer span.End()

	if !id.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.storage.ListDeliveryRecords(ctx, id.AccountID)
}

func deliveryBody(e *types.Export, destination string) string {
	var b strings.Builder
	b.WriteString("<h2>Your scan export is ready</h2>")
	b.WriteString(fmt.Sprintf("<p>Export <strong>#%s</strong> with %d scans is attached as CSV.</p>", e.ID, e.ScanCount))
	b.WriteString(fmt.Sprintf("<p>Requested for %s on %s.</p>", destination, e.CreatedAt.UTC().Format("2006-01-02 15:04 MST")))
	return b.String()
}
