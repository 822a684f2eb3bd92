package kundali

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/kundali/pkg/errors"
	"github.com/yanqian/kundali/pkg/util"
)

// Error codes raised by the service on top of the engine's.
const (
	CodeNotFound = "not_found"
	CodeArchive  = "archive_error"
)

// Service exposes chart computation and archived lookups.
type Service interface {
	Compute(ctx context.Context, req Request) (Response, error)
	Get(ctx context.Context, id uuid.UUID) (Response, error)
	Variants() []VariantInfo
}

type service struct {
	cfg    Config
	store  Store
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewService wires up the kundali domain.
func NewService(cfg Config, store Store, repo Repository, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		store:  store,
		repo:   repo,
		logger: logger.With("component", "kundali.service"),
		now:    util.NowUTC,
		newID:  uuid.New,
	}
}

func (s *service) Compute(ctx context.Context, req Request) (Response, error) {
	if err := req.BirthInput.Validate(); err != nil {
		return Response{}, err
	}
	vargas, err := s.resolveVargas(req.Vargas)
	if err != nil {
		return Response{}, err
	}
	reference := s.resolveReference(req.ReferenceTime)

	fingerprint, err := fingerprintOf(req.BirthInput, reference, vargas, s.cfg.ApparentSiderealTime)
	if err != nil {
		return Response{}, apperrors.Wrap("internal_error", "failed to fingerprint request", err)
	}

	if cached, ok, err := s.store.GetResponse(ctx, fingerprint); err != nil {
		s.logger.Warn("chart cache lookup failed", "error", err)
	} else if ok {
		s.logger.Info("chart cache hit", "id", cached.ID)
		cached.Cached = true
		return cached, nil
	}

	start := time.Now()
	result, err := Compute(req.BirthInput, reference, Options{
		Vargas:               vargas,
		ApparentSiderealTime: s.cfg.ApparentSiderealTime,
	})
	if err != nil {
		return Response{}, err
	}
	s.logger.Info("chart computed",
		"ascendant", result.Chart.Ascendant.SignName,
		"vargas", len(result.Vargas),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	resp := Response{
		ID:        s.newID(),
		CreatedAt: s.now().UTC(),
		Result:    result,
	}
	if err := s.repo.Insert(ctx, fingerprint, resp); err != nil {
		s.logger.Warn("chart archive insert failed", "id", resp.ID, "error", err)
	}
	if err := s.store.SaveResponse(ctx, fingerprint, resp, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("chart cache save failed", "id", resp.ID, "error", err)
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Response, error) {
	resp, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Response{}, apperrors.Wrap(CodeArchive, "chart lookup failed", err)
	}
	if !ok {
		return Response{}, apperrors.Wrap(CodeNotFound, "chart not found", nil)
	}
	return resp, nil
}

func (s *service) Variants() []VariantInfo {
	out := make([]VariantInfo, 0, len(Vargas))
	for _, v := range Vargas {
		out = append(out, VariantInfo{Name: v.Name, Title: v.Title, Parts: v.Parts})
	}
	return out
}

// resolveVargas validates and canonicalises requested names, falling back
// to the configured defaults.
func (s *service) resolveVargas(names []string) ([]string, error) {
	if len(names) == 0 {
		names = s.cfg.DefaultVargas
	}
	if len(names) == 0 {
		names = DefaultVargas
	}
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		v, err := LookupVarga(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[v.Name]; dup {
			continue
		}
		seen[v.Name] = struct{}{}
		out = append(out, v.Name)
	}
	return out, nil
}

func (s *service) resolveReference(ref *time.Time) time.Time {
	if ref != nil && !ref.IsZero() {
		return ref.UTC()
	}
	return util.StartOfDayUTC(s.now())
}

// fingerprintOf keys the cache on everything that shapes the result,
// including engine settings, so a shared cache never serves a chart
// computed under different settings.
func fingerprintOf(input BirthInput, reference time.Time, vargas []string, apparent bool) (string, error) {
	payload, err := json.Marshal(struct {
		Input     BirthInput `json:"input"`
		Reference string     `json:"reference"`
		Vargas    string     `json:"vargas"`
		Apparent  bool       `json:"apparentSiderealTime"`
	}{
		Input:     input,
		Reference: reference.Format(time.RFC3339Nano),
		Vargas:    strings.Join(vargas, ","),
		Apparent:  apparent,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
