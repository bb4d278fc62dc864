// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scans

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/omnaris/scan-service/internal/authorization"
	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/tracing"
	"github.com/omnaris/scan-service/internal/types"
)

const dateLayout = "2006-01-02"

var (
	ErrUnknownForm   = errors.New("unknown form")
	ErrMissingField  = errors.New("missing field")
	ErrInvalidFilter = errors.New("invalid scan filter")
)

// ListFilter narrows the unexported scan listing. Dates are calendar days.
type ListFilter struct {
	FormKey  string
	FromDate string
	ToDate   string
	Page     int64
	PageSize int64
}

type ScanPage struct {
	Scans    []*types.Scan
	Total    int64
	Page     int64
	PageSize int64
	FormKeys []string
}

type Service struct {
	storage StorageInterface
	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(st StorageInterface, logger logging.LoggerInterface, tracer tracing.TracingInterface) *Service {
	s := new(Service)
	s.storage = st
	s.logger = logger
	s.tracer = tracer
	return s
}

func (s *Service) ListForms(ctx context.Context) []Form {
	_, span := s.tracer.Start(ctx, "scans.ListForms")
	defer span.End()

	out := make([]Form, len(forms))
	copy(out, forms)
	return out
}

// SubmitScan records one capture. Values are trimmed and stored in the
// form's field order, keys outside the form layout are dropped.
func (s *Service) SubmitScan(ctx context.Context, id types.Identity, formKey string, values map[string]string) (*types.Scan, error) {
	ctx, span := s.tracer.Start(ctx, "scans.SubmitScan")
	defer span.End()

	form, ok := formByKey(formKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, formKey)
	}

	payload := make(types.Payload, 0, len(form.Fields))
	for _, field := range form.Fields {
		v := strings.TrimSpace(values[field])
		if v == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
		payload = append(payload, types.PayloadField{Key: field, Value: v})
	}

	scan, err := s.storage.CreateScan(ctx, &types.Scan{
		AccountID: id.AccountID,
		UserID:    &id.UserID,
		FormKey:   form.Key,
		Payload:   payload,
		ScannedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scan: %w", err)
	}

	s.logger.Debugf("recorded %s scan %s for account %s", scan.FormKey, scan.ID, id.AccountID)
	return scan, nil
}

// ListScans pages through the account's unexported scans, newest first.
// Workers only see their own captures.
func (s *Service) ListScans(ctx context.Context, id types.Identity, filter ListFilter) (*ScanPage, error) {
	ctx, span := s.tracer.Start(ctx, "scans.ListScans")
	defer span.End()

	sf, err := filter.scanFilter()
	if err != nil {
		return nil, err
	}
	ownerID := authorization.OwnerScope(id)

	list, err := s.storage.ListUnexportedScans(ctx, id.AccountID, sf, ownerID, filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	total, err := s.storage.CountUnexportedScans(ctx, id.AccountID, sf, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count scans: %w", err)
	}
	formKeys, err := s.storage.ListFormKeys(ctx, id.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list form keys: %w", err)
	}

	return &ScanPage{
		Scans:    list,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		FormKeys: formKeys,
	}, nil
}

func (f ListFilter) scanFilter() (types.ScanFilter, error) {
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
	return sf, nil
}
