// Package handler: export.go implements GET /export.
// Returns every trip as a flat table, one row per traveler.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_number", "origin", "destination", "mode_of_transport",
	"departure", "arrival", "notes", "created_at",
	"lat", "lng", "temperature", "traveler_name",
}

// GetExport implements GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != gen.Json && format != gen.Csv {
		return gen.GetExport422JSONResponse(requestBody("format must be one of: json, csv")), nil
	}

	rows, err := s.export.Export(ctx)
	if err != nil {
		return nil, err
	}

	if format == gen.Csv {
		return buildCSVResponse(rows), nil
	}
	return buildJSONResponse(rows), nil
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow) gen.GetExport200JSONResponse {
	out := make(gen.GetExport200JSONResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return out
}

// buildCSVResponse encodes domain rows as CSV and wraps in the streaming response type.
func buildCSVResponse(rows []domain.ExportRow) gen.GetExport200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.GetExport200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// domainRowToGenRow maps a domain.ExportRow to the generated gen.ExportRow type.
// Optional fields that are empty strings become nil pointers (omitted in JSON).
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	return gen.ExportRow{
		TripId:          r.TripID,
		TripNumber:      r.TripNumber,
		Origin:          r.Origin,
		Destination:     r.Destination,
		ModeOfTransport: r.ModeOfTransport,
		Departure:       r.Departure,
		Arrival:         r.Arrival,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		Lat:             optional(r.Lat),
		Lng:             optional(r.Lng),
		Temperature:     optional(r.Temperature),
		TravelerName:    optional(r.TravelerName),
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow in csvHeaders order.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		strconv.Itoa(r.TripNumber),
		r.Origin,
		r.Destination,
		r.ModeOfTransport,
		r.Departure,
		r.Arrival,
		r.Notes,
		r.CreatedAt,
		r.Lat,
		r.Lng,
		r.Temperature,
		r.TravelerName,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
