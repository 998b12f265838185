package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/keystore"
	"github.com/iho/chainsnap/internal/usecase"
)

// SnapshotResponse summarizes a stashed snapshot.
type SnapshotResponse struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Block      string    `json:"block,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
	Accounts   int       `json:"accounts"`
	Currencies int       `json:"currencies"`
}

// SnapshotFromDomain converts a stashed snapshot to its summary.
func SnapshotFromDomain(s *domain.StashedSnapshot) *SnapshotResponse {
	resp := &SnapshotResponse{
		ID:         s.ID,
		Source:     s.Source,
		Block:      s.Block,
		CapturedAt: s.CapturedAt,
	}
	if s.Snapshot != nil {
		resp.Accounts = len(s.Snapshot.Balances)
		resp.Currencies = len(s.Snapshot.Aggregates)
	}
	return resp
}

// SnapshotDetailResponse is a stashed snapshot with names resolved.
type SnapshotDetailResponse struct {
	SnapshotResponse
	Snapshot usecase.HumanSnapshot `json:"snapshot"`
}

// DiscrepancyResponse is one differing field. The *_units fields render
// amounts in whole tokens.
type DiscrepancyResponse struct {
	Section         domain.Section   `json:"section"`
	Account         string           `json:"account,omitempty"`
	AccountID       string           `json:"account_id,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	Field           string           `json:"field,omitempty"`
	Left            *decimal.Decimal `json:"left,omitempty"`
	Right           *decimal.Decimal `json:"right,omitempty"`
	Difference      decimal.Decimal  `json:"difference"`
	DifferenceUnits string           `json:"difference_units"`
}

// ComparisonResponse represents a comparison report in API responses.
type ComparisonResponse struct {
	ID               string                 `json:"id"`
	LeftID           string                 `json:"left_id"`
	RightID          string                 `json:"right_id"`
	Equal            bool                   `json:"equal"`
	DiscrepancyCount int                    `json:"discrepancy_count"`
	Discrepancies    []*DiscrepancyResponse `json:"discrepancies"`
	Report           string                 `json:"report,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// ComparisonFromDomain converts a report. decimals drives the unit rendering.
func ComparisonFromDomain(r *domain.ComparisonReport, decimals int32) *ComparisonResponse {
	discrepancies := make([]*DiscrepancyResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = &DiscrepancyResponse{
			Section:         d.Section,
			Account:         d.Account,
			AccountID:       d.AccountID,
			Currency:        d.Currency,
			Field:           d.Field,
			Left:            d.Left,
			Right:           d.Right,
			Difference:      d.Difference,
			DifferenceUnits: usecase.FormatUnits(d.Difference, decimals),
		}
	}

	return &ComparisonResponse{
		ID:               r.ID,
		LeftID:           r.LeftID,
		RightID:          r.RightID,
		Equal:            r.Equal,
		DiscrepancyCount: len(r.Discrepancies),
		Discrepancies:    discrepancies,
		Report:           r.Report,
		CreatedAt:        r.CreatedAt,
	}
}

// ComparisonsFromDomain converts reports without their text dumps.
func ComparisonsFromDomain(reports []*domain.ComparisonReport, decimals int32) []*ComparisonResponse {
	result := make([]*ComparisonResponse, len(reports))
	for i, r := range reports {
		result[i] = ComparisonFromDomain(r, decimals)
		result[i].Report = ""
	}
	return result
}

// ListComparisonsResponse represents a page of comparison reports.
type ListComparisonsResponse struct {
	Comparisons []*ComparisonResponse `json:"comparisons"`
	Total       int64                 `json:"total"`
}

// IdentityResponse is one key store registration.
type IdentityResponse struct {
	Label     string `json:"label"`
	Kind      string `json:"kind"`
	AccountID string `json:"account_id"`
}

// IdentitiesFromKeyStore converts key store registrations.
func IdentitiesFromKeyStore(identities []keystore.Identity) []*IdentityResponse {
	result := make([]*IdentityResponse, len(identities))
	for i, id := range identities {
		result[i] = &IdentityResponse{
			Label:     id.Label,
			Kind:      id.Kind.String(),
			AccountID: id.AccountID.String(),
		}
	}
	return result
}

// ListIdentitiesResponse represents the configured identities.
type ListIdentitiesResponse struct {
	Identities []*IdentityResponse `json:"identities"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
